/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Query option message templates. Templates are keys of the messages catalog
const (
	MsgNotAllowedForSingle   = "option is not allowed for single-valued target «%s»"
	MsgNotAllowedForRef      = "option is not allowed for references"
	MsgNotAllowedForCount    = "only $filter and $search are allowed for $count"
	MsgNotSortableType       = "expression of type «%s» is not sortable"
	MsgNotSortableCollection = "collection-valued expression is not sortable"
	MsgNotCyclic             = "$levels is not allowed for not cyclic navigation «%s»"
	MsgNotNonNegativeInteger = "value «%s» must be a non-negative integer"
	MsgNotBoolean            = "value «%s» must be «true» or «false»"
	MsgUnknownOption         = "system query option «%s» is not supported"
)

var translations = map[string]map[language.Tag]string{
	MsgNotAllowedForSingle: {
		language.German: "Option ist für das einwertige Ziel «%s» nicht erlaubt",
	},
	MsgNotAllowedForRef: {
		language.German: "Option ist für Referenzen nicht erlaubt",
	},
	MsgNotAllowedForCount: {
		language.German: "für $count sind nur $filter und $search erlaubt",
	},
	MsgNotSortableType: {
		language.German: "Ausdruck vom Typ «%s» ist nicht sortierbar",
	},
	MsgNotSortableCollection: {
		language.German: "mehrwertiger Ausdruck ist nicht sortierbar",
	},
	MsgNotCyclic: {
		language.German: "$levels ist für die nicht zyklische Navigation «%s» nicht erlaubt",
	},
	MsgNotNonNegativeInteger: {
		language.German: "Wert «%s» muss eine nicht negative ganze Zahl sein",
	},
	MsgNotBoolean: {
		language.German: "Wert «%s» muss «true» oder «false» sein",
	},
	MsgUnknownOption: {
		language.German: "Systemabfrageoption «%s» wird nicht unterstützt",
	},
}

var messages = func() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, tt := range translations {
		if err := b.SetString(language.English, key, key); err != nil {
			panic(err)
		}
		for tag, msg := range tt {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}()
