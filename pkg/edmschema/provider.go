/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edmschema

import (
	"maps"
	"slices"

	"github.com/voedger/odata/pkg/edm"
)

// In-memory schema provider
type provider struct {
	aliases          map[string]string
	namespaces       []string
	entityTypes      map[edm.QName]*edm.EntityTypeDef
	complexTypes     map[edm.QName]*edm.ComplexTypeDef
	enumTypes        map[edm.QName]*edm.EnumTypeDef
	typeDefinitions  map[edm.QName]*edm.TypeDefinitionDef
	terms            map[edm.QName]*edm.TermDef
	actions          map[edm.QName][]*edm.OperationDef
	functions        map[edm.QName][]*edm.OperationDef
	containers       map[edm.QName]*edm.EntityContainerDef
	defaultContainer *edm.EntityContainerDef
}

func newProvider() *provider {
	return &provider{
		aliases:         make(map[string]string),
		entityTypes:     make(map[edm.QName]*edm.EntityTypeDef),
		complexTypes:    make(map[edm.QName]*edm.ComplexTypeDef),
		enumTypes:       make(map[edm.QName]*edm.EnumTypeDef),
		typeDefinitions: make(map[edm.QName]*edm.TypeDefinitionDef),
		terms:           make(map[edm.QName]*edm.TermDef),
		actions:         make(map[edm.QName][]*edm.OperationDef),
		functions:       make(map[edm.QName][]*edm.OperationDef),
		containers:      make(map[edm.QName]*edm.EntityContainerDef),
	}
}

func (p *provider) Aliases() map[string]string { return maps.Clone(p.aliases) }

func (p *provider) Namespaces() []string { return slices.Clone(p.namespaces) }

func (p *provider) EntityType(n edm.QName) *edm.EntityTypeDef { return p.entityTypes[n] }

func (p *provider) ComplexType(n edm.QName) *edm.ComplexTypeDef { return p.complexTypes[n] }

func (p *provider) EnumType(n edm.QName) *edm.EnumTypeDef { return p.enumTypes[n] }

func (p *provider) TypeDefinition(n edm.QName) *edm.TypeDefinitionDef { return p.typeDefinitions[n] }

func (p *provider) Term(n edm.QName) *edm.TermDef { return p.terms[n] }

func (p *provider) Actions(n edm.QName) []*edm.OperationDef { return p.actions[n] }

func (p *provider) Functions(n edm.QName) []*edm.OperationDef { return p.functions[n] }

func (p *provider) EntityContainer(n edm.QName) *edm.EntityContainerDef {
	if n.IsNull() {
		return p.defaultContainer
	}
	return p.containers[n]
}

// Adds schema elements. Checks names are unique within namespace
func (p *provider) add(s *edm.SchemaDef) error {
	if s.Namespace == "" {
		return edm.ErrInvalid("schema namespace is empty")
	}
	if slices.Contains(p.namespaces, s.Namespace) {
		return edm.ErrAlreadyExists("schema namespace «%s»", s.Namespace)
	}
	p.namespaces = append(p.namespaces, s.Namespace)

	if err := p.addAlias(s.Alias, s.Namespace); err != nil {
		return err
	}
	for _, r := range s.References {
		if err := p.addAlias(r.Alias, r.Namespace); err != nil {
			return err
		}
	}

	names := map[string]bool{}
	unique := func(name string) error {
		if name == "" {
			return edm.ErrInvalid("schema «%s» has element without name", s.Namespace)
		}
		if names[name] {
			return errDuplicateElement(s.Namespace, name)
		}
		names[name] = true
		return nil
	}

	for _, t := range s.EntityTypes {
		if err := unique(t.Name); err != nil {
			return err
		}
		p.entityTypes[edm.NewQName(s.Namespace, t.Name)] = t
	}
	for _, t := range s.ComplexTypes {
		if err := unique(t.Name); err != nil {
			return err
		}
		p.complexTypes[edm.NewQName(s.Namespace, t.Name)] = t
	}
	for _, t := range s.EnumTypes {
		if err := unique(t.Name); err != nil {
			return err
		}
		p.enumTypes[edm.NewQName(s.Namespace, t.Name)] = t
	}
	for _, t := range s.TypeDefinitions {
		if err := unique(t.Name); err != nil {
			return err
		}
		p.typeDefinitions[edm.NewQName(s.Namespace, t.Name)] = t
	}
	for _, t := range s.Terms {
		if err := unique(t.Name); err != nil {
			return err
		}
		p.terms[edm.NewQName(s.Namespace, t.Name)] = t
	}

	// overloads share the name, but actions and functions must not
	opNames := map[string]bool{}
	for _, a := range s.Actions {
		if !opNames[a.Name] {
			if err := unique(a.Name); err != nil {
				return err
			}
			opNames[a.Name] = true
		}
		n := edm.NewQName(s.Namespace, a.Name)
		p.actions[n] = append(p.actions[n], a)
	}
	funcNames := map[string]bool{}
	for _, f := range s.Functions {
		if !funcNames[f.Name] {
			if err := unique(f.Name); err != nil {
				return err
			}
			funcNames[f.Name] = true
		}
		n := edm.NewQName(s.Namespace, f.Name)
		p.functions[n] = append(p.functions[n], f)
	}

	if c := s.EntityContainer; c != nil {
		if err := unique(c.Name); err != nil {
			return err
		}
		if p.defaultContainer != nil {
			return edm.ErrAlreadyExists("entity container «%s.%s», provider already has «%s.%s»",
				s.Namespace, c.Name, p.defaultContainer.Namespace, p.defaultContainer.Name)
		}
		c.Namespace = s.Namespace
		p.containers[edm.NewQName(s.Namespace, c.Name)] = c
		p.defaultContainer = c
	}
	return nil
}

func (p *provider) addAlias(alias, ns string) error {
	if alias == "" {
		return nil
	}
	if other, ok := p.aliases[alias]; ok && other != ns {
		return edm.ErrAlreadyExists("alias «%s» for «%s» and «%s»", alias, other, ns)
	}
	p.aliases[alias] = ns
	return nil
}

// Replaces alias in name with namespace
func (p *provider) resolve(name edm.QName) edm.QName {
	if ns, ok := p.aliases[name.Namespace()]; ok {
		return edm.NewQName(ns, name.Name())
	}
	return name
}

func (p *provider) typeName(ref string) edm.QName {
	s, _ := edm.ParseTypeRef(ref)
	n, err := edm.ParseQName(s)
	if err != nil {
		return edm.NullQName
	}
	return p.resolve(n)
}
