/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

import "sync"

// Entity container
type EntityContainer struct {
	name            QName
	entitySets      map[string]*EntitySet
	singletons      map[string]*Singleton
	actionImports   map[string]*ActionImport
	functionImports map[string]*FunctionImport
}

func newEntityContainer(cat *Catalog, name QName, def *EntityContainerDef) *EntityContainer {
	ec := &EntityContainer{
		name:            name,
		entitySets:      make(map[string]*EntitySet, len(def.EntitySets)),
		singletons:      make(map[string]*Singleton, len(def.Singletons)),
		actionImports:   make(map[string]*ActionImport, len(def.ActionImports)),
		functionImports: make(map[string]*FunctionImport, len(def.FunctionImports)),
	}
	for _, d := range def.EntitySets {
		es := &EntitySet{
			name:        d.Name,
			container:   ec,
			typeName:    cat.typeName(d.EntityType),
			inSvcDoc:    boolOr(d.IncludeInServiceDocument, true),
			navBindings: navBindings(d.NavigationPropertyBindings),
		}
		es.typ = sync.OnceValue(func() *EntityType { return cat.EntityType(es.typeName) })
		ec.entitySets[d.Name] = es
	}
	for _, d := range def.Singletons {
		s := &Singleton{
			name:        d.Name,
			container:   ec,
			typeName:    cat.typeName(d.Type),
			navBindings: navBindings(d.NavigationPropertyBindings),
		}
		s.typ = sync.OnceValue(func() *EntityType { return cat.EntityType(s.typeName) })
		ec.singletons[d.Name] = s
	}
	for _, d := range def.ActionImports {
		ai := &ActionImport{name: d.Name, actionName: cat.typeName(d.Action), entitySet: d.EntitySet}
		ai.action = sync.OnceValue(func() *Operation { return cat.UnboundAction(ai.actionName) })
		ec.actionImports[d.Name] = ai
	}
	for _, d := range def.FunctionImports {
		fi := &FunctionImport{
			name:         d.Name,
			functionName: cat.typeName(d.Function),
			entitySet:    d.EntitySet,
			inSvcDoc:     d.IncludeInServiceDocument,
			cat:          cat,
		}
		ec.functionImports[d.Name] = fi
	}
	return ec
}

func navBindings(defs []*NavigationPropertyBindingDef) map[string]string {
	if len(defs) == 0 {
		return nil
	}
	m := make(map[string]string, len(defs))
	for _, b := range defs {
		m[b.Path] = b.Target
	}
	return m
}

func (ec *EntityContainer) QName() QName { return ec.name }

// Returns entity set by name, nil if not found
func (ec *EntityContainer) EntitySet(name string) *EntitySet { return ec.entitySets[name] }

// Returns singleton by name, nil if not found
func (ec *EntityContainer) Singleton(name string) *Singleton { return ec.singletons[name] }

func (ec *EntityContainer) ActionImport(name string) *ActionImport { return ec.actionImports[name] }

func (ec *EntityContainer) FunctionImport(name string) *FunctionImport {
	return ec.functionImports[name]
}

// Sorted names of entity sets
func (ec *EntityContainer) EntitySetNames() []string { return sortedKeys(ec.entitySets) }

// Sorted names of singletons
func (ec *EntityContainer) SingletonNames() []string { return sortedKeys(ec.singletons) }

type EntitySet struct {
	name        string
	container   *EntityContainer
	typeName    QName
	inSvcDoc    bool
	navBindings map[string]string
	typ         func() *EntityType
}

func (es *EntitySet) Name() string { return es.name }

func (es *EntitySet) Container() *EntityContainer { return es.container }

func (es *EntitySet) EntityTypeName() QName { return es.typeName }

// Returns entity type of set, nil if not resolved
func (es *EntitySet) EntityType() *EntityType { return es.typ() }

func (es *EntitySet) IncludeInServiceDocument() bool { return es.inSvcDoc }

// Returns target of navigation property binding path, empty if not bound
func (es *EntitySet) NavigationPropertyBinding(path string) string { return es.navBindings[path] }

type Singleton struct {
	name        string
	container   *EntityContainer
	typeName    QName
	navBindings map[string]string
	typ         func() *EntityType
}

func (s *Singleton) Name() string { return s.name }

func (s *Singleton) Container() *EntityContainer { return s.container }

func (s *Singleton) EntityTypeName() QName { return s.typeName }

func (s *Singleton) EntityType() *EntityType { return s.typ() }

func (s *Singleton) NavigationPropertyBinding(path string) string { return s.navBindings[path] }

type ActionImport struct {
	name       string
	actionName QName
	entitySet  string
	action     func() *Operation
}

func (ai *ActionImport) Name() string { return ai.name }

func (ai *ActionImport) ActionName() QName { return ai.actionName }

// Returns unbound action imported, nil if not resolved
func (ai *ActionImport) Action() *Operation { return ai.action() }

func (ai *ActionImport) EntitySet() string { return ai.entitySet }

type FunctionImport struct {
	name         string
	functionName QName
	entitySet    string
	inSvcDoc     bool
	cat          *Catalog
}

func (fi *FunctionImport) Name() string { return fi.name }

func (fi *FunctionImport) FunctionName() QName { return fi.functionName }

// Returns all unbound overloads of imported function
func (fi *FunctionImport) Functions() []*Operation { return fi.cat.UnboundFunctions(fi.functionName) }

// Returns unbound overload with specified parameter names
func (fi *FunctionImport) Function(parameterNames []string) *Operation {
	return fi.cat.UnboundFunction(fi.functionName, parameterNames)
}

func (fi *FunctionImport) EntitySet() string { return fi.entitySet }

func (fi *FunctionImport) IncludeInServiceDocument() bool { return fi.inSvcDoc }
