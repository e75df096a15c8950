/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

import (
	"sync"
	"time"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/odata/pkg/metrics"
	"github.com/voedger/odata/pkg/objcache"
)

// Memo tables names, used as metrics labels
const (
	tableEntityTypes          = "entityTypes"
	tableComplexTypes         = "complexTypes"
	tableEnumTypes            = "enumTypes"
	tableTypeDefinitions      = "typeDefinitions"
	tableTerms                = "terms"
	tableActions              = "actions"
	tableFunctions            = "functions"
	tableUnboundActions       = "unboundActions"
	tableUnboundFunctions     = "unboundFunctions"
	tableBoundActions         = "boundActions"
	tableBoundFunctions       = "boundFunctions"
	tableBoundFunctionsByName = "boundFunctionsByName"
	tableContainers           = "containers"
)

// Catalog of schema elements. Lazily materializes elements from schema provider and memoizes them.
//
// @ConcurrentAccess
type Catalog struct {
	provider   ISchemaProvider
	xrefs      ICrossReferences
	metrics    metrics.ICatalogMetrics
	aliases    func() map[string]string
	namespaces func() map[string]bool

	entityTypes     *objcache.Memo[*EntityType]
	complexTypes    *objcache.Memo[*ComplexType]
	enumTypes       *objcache.Memo[*EnumType]
	typeDefinitions *objcache.Memo[*TypeDefinition]
	terms           *objcache.Memo[*Term]

	// all overloads by name, as materialized from provider
	actions   *objcache.Memo[[]*Operation]
	functions *objcache.Memo[[]*Operation]

	unboundActions       *objcache.Memo[*Operation]
	unboundFunctions     *objcache.Memo[[]*Operation]
	boundActions         *objcache.Memo[*Operation]
	boundFunctions       *objcache.Memo[*Operation]
	boundFunctionsByName *objcache.Memo[[]*Operation]

	containers   *objcache.Memo[*EntityContainer]
	containersMu sync.Mutex
}

var _ ICatalog = (*Catalog)(nil)

func newCatalog(provider ISchemaProvider, params CatalogParams) *Catalog {
	c := &Catalog{
		provider: provider,
		xrefs:    params.CrossReferences,
		metrics:  params.Metrics,
	}
	c.aliases = sync.OnceValue(c.buildAliases)
	c.namespaces = sync.OnceValue(c.buildNamespaces)

	c.entityTypes = newMemo[*EntityType](c, params, tableEntityTypes)
	c.complexTypes = newMemo[*ComplexType](c, params, tableComplexTypes)
	c.enumTypes = newMemo[*EnumType](c, params, tableEnumTypes)
	c.typeDefinitions = newMemo[*TypeDefinition](c, params, tableTypeDefinitions)
	c.terms = newMemo[*Term](c, params, tableTerms)
	c.actions = newMemo[[]*Operation](c, params, tableActions)
	c.functions = newMemo[[]*Operation](c, params, tableFunctions)
	c.unboundActions = newMemo[*Operation](c, params, tableUnboundActions)
	c.unboundFunctions = newMemo[[]*Operation](c, params, tableUnboundFunctions)
	c.boundActions = newMemo[*Operation](c, params, tableBoundActions)
	c.boundFunctions = newMemo[*Operation](c, params, tableBoundFunctions)
	c.boundFunctionsByName = newMemo[[]*Operation](c, params, tableBoundFunctionsByName)
	c.containers = newMemo[*EntityContainer](c, params, tableContainers)
	return c
}

func newMemo[V any](c *Catalog, params CatalogParams, table string) *objcache.Memo[V] {
	var observe func(objcache.MemoResult)
	if c.metrics != nil {
		observe = func(r objcache.MemoResult) { c.metrics.Lookup(table, r.String()) }
	}
	return objcache.NewMemo[V](params.CacheProvider, params.CacheSize, observe)
}

func (c *Catalog) buildAliases() map[string]string {
	aliases := c.provider.Aliases()
	if logger.IsVerbose() {
		logger.Verbose("catalog aliases:", aliases)
	}
	return aliases
}

func (c *Catalog) buildNamespaces() map[string]bool {
	nn := make(map[string]bool)
	for _, ns := range c.provider.Namespaces() {
		nn[ns] = true
	}
	return nn
}

func (c *Catalog) ResolveAlias(name QName) QName {
	if ns, ok := c.aliases()[name.Namespace()]; ok {
		return NewQName(ns, name.Name())
	}
	return name
}

func (c *Catalog) HasNamespace(ns string) bool {
	if c.namespaces()[ns] {
		return true
	}
	if resolved, ok := c.aliases()[ns]; ok {
		return c.namespaces()[resolved]
	}
	return false
}

// Returns catalog which declares foreign namespace, nil if namespace is own or not referenced
func (c *Catalog) crossReference(ns string) ICatalog {
	if c.xrefs == nil || c.namespaces()[ns] {
		return nil
	}
	x := c.xrefs.Catalog(ns)
	if x == nil || x == ICatalog(c) || !x.HasNamespace(ns) {
		return nil
	}
	return x
}

// Parses type reference to canonical name and collection flag. Returns NullQName if reference is not a valid name
func (c *Catalog) typeRef(s string) (QName, bool) {
	name, coll := ParseTypeRef(s)
	qn, err := ParseQName(name)
	if err != nil {
		return NullQName, coll
	}
	return c.ResolveAlias(qn), coll
}

func (c *Catalog) typeName(s string) QName {
	qn, _ := c.typeRef(s)
	return qn
}

// Resolves element by memo key. Materializes element from provider by local, or from foreign catalog by remote
func lookup[V any](c *Catalog, memo *objcache.Memo[V], table, key, ns string,
	local func() (V, bool), remote func(ICatalog) (V, bool)) V {
	v, _ := memo.Get(key, func() (V, bool) {
		start := time.Now()
		v, ok := local()
		if c.metrics != nil {
			c.metrics.Materialized(table, time.Since(start))
		}
		if ok {
			if logger.IsVerbose() {
				logger.Verbose("catalog", table, "materialized", key)
			}
			return v, true
		}
		if remote != nil {
			if x := c.crossReference(ns); x != nil {
				if v, ok := remote(x); ok {
					if c.metrics != nil {
						c.metrics.Lookup(table, metrics.ResultCrossReference)
					}
					if logger.IsVerbose() {
						logger.Verbose("catalog", table, "resolved by cross reference", key)
					}
					return v, true
				}
			}
		}
		return v, false
	})
	return v
}

func notNil[V comparable](v V) (V, bool) {
	var zero V
	return v, v != zero
}

func notEmpty[V any](v []V) ([]V, bool) {
	return v, len(v) > 0
}

func (c *Catalog) EntityType(name QName) *EntityType {
	name = c.ResolveAlias(name)
	return lookup(c, c.entityTypes, tableEntityTypes, name.String(), name.Namespace(),
		func() (*EntityType, bool) {
			if def := c.provider.EntityType(name); def != nil {
				return newEntityType(c, name, def), true
			}
			return nil, false
		},
		func(x ICatalog) (*EntityType, bool) { return notNil(x.EntityType(name)) })
}

func (c *Catalog) ComplexType(name QName) *ComplexType {
	name = c.ResolveAlias(name)
	return lookup(c, c.complexTypes, tableComplexTypes, name.String(), name.Namespace(),
		func() (*ComplexType, bool) {
			if def := c.provider.ComplexType(name); def != nil {
				return newComplexType(c, name, def), true
			}
			return nil, false
		},
		func(x ICatalog) (*ComplexType, bool) { return notNil(x.ComplexType(name)) })
}

func (c *Catalog) EnumType(name QName) *EnumType {
	name = c.ResolveAlias(name)
	return lookup(c, c.enumTypes, tableEnumTypes, name.String(), name.Namespace(),
		func() (*EnumType, bool) {
			if def := c.provider.EnumType(name); def != nil {
				return newEnumType(c, name, def), true
			}
			return nil, false
		},
		func(x ICatalog) (*EnumType, bool) { return notNil(x.EnumType(name)) })
}

func (c *Catalog) TypeDefinition(name QName) *TypeDefinition {
	name = c.ResolveAlias(name)
	return lookup(c, c.typeDefinitions, tableTypeDefinitions, name.String(), name.Namespace(),
		func() (*TypeDefinition, bool) {
			if def := c.provider.TypeDefinition(name); def != nil {
				return newTypeDefinition(c, name, def), true
			}
			return nil, false
		},
		func(x ICatalog) (*TypeDefinition, bool) { return notNil(x.TypeDefinition(name)) })
}

func (c *Catalog) Term(name QName) *Term {
	name = c.ResolveAlias(name)
	return lookup(c, c.terms, tableTerms, name.String(), name.Namespace(),
		func() (*Term, bool) {
			if def := c.provider.Term(name); def != nil {
				return newTerm(c, name, def), true
			}
			return nil, false
		},
		func(x ICatalog) (*Term, bool) { return notNil(x.Term(name)) })
}

func (c *Catalog) Type(name QName) IType {
	name = c.ResolveAlias(name)
	if name.Namespace() == EdmNamespace {
		if t := PrimitiveTypeByName(name.Name()); t != nil {
			return t
		}
		return nil
	}
	if t := c.TypeDefinition(name); t != nil {
		return t
	}
	if t := c.EnumType(name); t != nil {
		return t
	}
	if t := c.ComplexType(name); t != nil {
		return t
	}
	if t := c.EntityType(name); t != nil {
		return t
	}
	return nil
}

func (c *Catalog) operations(memo *objcache.Memo[[]*Operation], table string, kind OperationKind, name QName,
	defs func(QName) []*OperationDef) []*Operation {
	return lookup(c, memo, table, name.String(), name.Namespace(),
		func() ([]*Operation, bool) {
			var ops []*Operation
			for _, def := range defs(name) {
				ops = append(ops, newOperation(c, name, kind, def))
			}
			return notEmpty(ops)
		},
		nil)
}

func (c *Catalog) allActions(name QName) []*Operation {
	return c.operations(c.actions, tableActions, OperationKind_Action, name, c.provider.Actions)
}

func (c *Catalog) allFunctions(name QName) []*Operation {
	return c.operations(c.functions, tableFunctions, OperationKind_Function, name, c.provider.Functions)
}

func (c *Catalog) UnboundAction(name QName) *Operation {
	name = c.ResolveAlias(name)
	return lookup(c, c.unboundActions, tableUnboundActions, name.String(), name.Namespace(),
		func() (*Operation, bool) {
			for _, op := range c.allActions(name) {
				if !op.IsBound() {
					return op, true
				}
			}
			return nil, false
		},
		func(x ICatalog) (*Operation, bool) { return notNil(x.UnboundAction(name)) })
}

func (c *Catalog) UnboundFunctions(name QName) []*Operation {
	name = c.ResolveAlias(name)
	return lookup(c, c.unboundFunctions, tableUnboundFunctions, name.String(), name.Namespace(),
		func() ([]*Operation, bool) {
			var ops []*Operation
			for _, op := range c.allFunctions(name) {
				if !op.IsBound() {
					ops = append(ops, op)
				}
			}
			return notEmpty(ops)
		},
		func(x ICatalog) ([]*Operation, bool) { return notEmpty(x.UnboundFunctions(name)) })
}

func (c *Catalog) UnboundFunction(name QName, parameterNames []string) *Operation {
	name = c.ResolveAlias(name)
	key := OverloadKey(name, NullQName, false, parameterNames)
	for _, op := range c.UnboundFunctions(name) {
		if op.OverloadKey() == key {
			return op
		}
	}
	return nil
}

func (c *Catalog) BoundAction(name, bindingType QName, isBindingCollection bool) *Operation {
	name, bindingType = c.ResolveAlias(name), c.ResolveAlias(bindingType)
	key := OverloadKey(name, bindingType, isBindingCollection, nil)
	return lookup(c, c.boundActions, tableBoundActions, key, name.Namespace(),
		func() (*Operation, bool) {
			for _, op := range c.allActions(name) {
				if op.IsBound() && op.OverloadKey() == key {
					return op, true
				}
			}
			return nil, false
		},
		func(x ICatalog) (*Operation, bool) {
			return notNil(x.BoundAction(name, bindingType, isBindingCollection))
		})
}

func (c *Catalog) BoundFunction(name, bindingType QName, isBindingCollection bool, parameterNames []string) *Operation {
	name, bindingType = c.ResolveAlias(name), c.ResolveAlias(bindingType)
	key := OverloadKey(name, bindingType, isBindingCollection, parameterNames)
	return lookup(c, c.boundFunctions, tableBoundFunctions, key, name.Namespace(),
		func() (*Operation, bool) {
			for _, op := range c.allFunctions(name) {
				if op.IsBound() && op.OverloadKey() == key {
					return op, true
				}
			}
			return nil, false
		},
		func(x ICatalog) (*Operation, bool) {
			return notNil(x.BoundFunction(name, bindingType, isBindingCollection, parameterNames))
		})
}

func (c *Catalog) BoundFunctionsWithName(name QName) []*Operation {
	name = c.ResolveAlias(name)
	return lookup(c, c.boundFunctionsByName, tableBoundFunctionsByName, name.String(), name.Namespace(),
		func() ([]*Operation, bool) {
			var ops []*Operation
			for _, op := range c.allFunctions(name) {
				if op.IsBound() {
					ops = append(ops, op)
				}
			}
			return notEmpty(ops)
		},
		func(x ICatalog) ([]*Operation, bool) { return notEmpty(x.BoundFunctionsWithName(name)) })
}

// Returns entity container by name. NullQName resolves the default container.
//
// Resolved default container is cached by both its name and NullQName.
func (c *Catalog) EntityContainer(name QName) *EntityContainer {
	if name.IsNull() {
		return lookup(c, c.containers, tableContainers, NullQName.String(), "",
			func() (*EntityContainer, bool) {
				def := c.provider.EntityContainer(NullQName)
				if def == nil {
					return nil, false
				}
				return c.materializeContainer(NewQName(def.Namespace, def.Name), def), true
			},
			nil)
	}

	name = c.ResolveAlias(name)
	return lookup(c, c.containers, tableContainers, name.String(), name.Namespace(),
		func() (*EntityContainer, bool) {
			def := c.provider.EntityContainer(name)
			if def == nil {
				return nil, false
			}
			ec := c.materializeContainer(name, def)
			if d := c.provider.EntityContainer(NullQName); d != nil && NewQName(d.Namespace, d.Name) == name {
				c.containers.Put(NullQName.String(), ec)
			}
			return ec, true
		},
		func(x ICatalog) (*EntityContainer, bool) { return notNil(x.EntityContainer(name)) })
}

// Returns container already cached by name or creates and caches new one.
// Default container may be materialized by both its name and NullQName keys at once.
func (c *Catalog) materializeContainer(name QName, def *EntityContainerDef) *EntityContainer {
	c.containersMu.Lock()
	defer c.containersMu.Unlock()
	if ec, ok := c.containers.Peek(name.String()); ok {
		return ec
	}
	ec := newEntityContainer(c, name, def)
	c.containers.Put(name.String(), ec)
	return ec
}
