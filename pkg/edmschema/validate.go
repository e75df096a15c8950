/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edmschema

import (
	"errors"
	"fmt"

	"github.com/voedger/odata/pkg/edm"
)

// Validates provider: aliases do not hide namespaces, base type chains are acyclic,
// overload keys are unique and entity types have keys
func (p *provider) validate() error {
	errs := []error{}

	for alias := range p.aliases {
		for _, ns := range p.namespaces {
			if alias == ns {
				errs = append(errs, edm.ErrInvalid("alias «%s» hides namespace", alias))
			}
		}
	}

	for n, t := range p.entityTypes {
		if err := p.validateBaseChain(n, func(n edm.QName) string {
			if t := p.entityTypes[n]; t != nil {
				return t.BaseType
			}
			return ""
		}); err != nil {
			errs = append(errs, err)
			continue
		}
		if !t.Abstract && !p.hasKey(n) {
			errs = append(errs, edm.ErrInvalid("entity type «%v» has no key", n))
		}
	}

	for n := range p.complexTypes {
		if err := p.validateBaseChain(n, func(n edm.QName) string {
			if t := p.complexTypes[n]; t != nil {
				return t.BaseType
			}
			return ""
		}); err != nil {
			errs = append(errs, err)
		}
	}

	for n, t := range p.enumTypes {
		values := map[int64]bool{}
		for i, m := range t.Members {
			v := int64(i)
			if m.Value != nil {
				v = *m.Value
			}
			if values[v] && !t.IsFlags {
				errs = append(errs, edm.ErrAlreadyExists("enum «%v» member «%s» value %d", n, m.Name, v))
			}
			values[v] = true
		}
	}

	errs = append(errs, p.validateOverloads(p.actions, false)...)
	errs = append(errs, p.validateOverloads(p.functions, true)...)

	return errors.Join(errs...)
}

func (p *provider) validateBaseChain(name edm.QName, baseOf func(edm.QName) string) error {
	visited := map[edm.QName]bool{}
	for n := name; ; {
		if visited[n] {
			return errCyclicBaseType(name)
		}
		visited[n] = true
		base := baseOf(n)
		if base == "" {
			return nil
		}
		n = p.typeName(base)
		if n.IsNull() {
			return edm.ErrInvalid("base type «%s» of «%v»", base, name)
		}
	}
}

// Returns has entity type own key or key inherited from base type declared in provider.
// Types with bases from foreign namespaces are assumed to be keyed
func (p *provider) hasKey(name edm.QName) bool {
	for n := name; ; {
		t := p.entityTypes[n]
		if t == nil {
			return true
		}
		if len(t.Key) > 0 {
			return true
		}
		if t.BaseType == "" {
			return false
		}
		n = p.typeName(t.BaseType)
	}
}

func (p *provider) validateOverloads(ops map[edm.QName][]*edm.OperationDef, withParams bool) (errs []error) {
	for n, overloads := range ops {
		keys := map[string]bool{}
		for _, op := range overloads {
			key := p.overloadKey(n, op, withParams)
			if keys[key] {
				errs = append(errs, errDuplicateOverload(key))
			}
			keys[key] = true
		}
	}
	return errs
}

func (p *provider) overloadKey(name edm.QName, op *edm.OperationDef, withParams bool) string {
	binding, coll := edm.NullQName, false
	params := op.Parameters
	if op.IsBound {
		if len(params) == 0 {
			return fmt.Sprintf("%v: bound without binding parameter", name)
		}
		var ref string
		ref, coll = edm.ParseTypeRef(params[0].Type)
		coll = coll || params[0].Collection
		binding = p.typeName(ref)
		params = params[1:]
	}
	var names []string
	if withParams {
		for _, par := range params {
			names = append(names, par.Name)
		}
	}
	return edm.OverloadKey(name, binding, coll, names)
}
