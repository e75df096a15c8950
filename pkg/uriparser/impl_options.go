/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"slices"
	"strconv"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/odata/pkg/edm"
)

// ParseTop parses $top value
func (p *Parser) ParseTop(text string) (int, error) { return parseNonNegative(optionTop, text) }

// ParseSkip parses $skip value
func (p *Parser) ParseSkip(text string) (int, error) { return parseNonNegative(optionSkip, text) }

// ParseCount parses $count value, «true» or «false»
func (p *Parser) ParseCount(text string) (bool, error) {
	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errQueryOption(optionCount, MsgNotBoolean, text)
}

func parseNonNegative(option, text string) (int, error) {
	v, err := strconv.ParseUint(text, 10, 31)
	if err != nil {
		return 0, errQueryOption(option, MsgNotNonNegativeInteger, text)
	}
	return int(v), nil
}

// ParseCollectionRoot parses «$all» or «$crossjoin(ES1,ES2,…)» resource segment.
//
// Entity sets of crossjoin must exist in the default container
func (p *Parser) ParseCollectionRoot(segment string) (*CollectionRoot, error) {
	if segment == "$all" {
		if err := p.cfg.Features.Check(Feature_All, "«$all»"); err != nil {
			return nil, err
		}
		return &CollectionRoot{All: true}, nil
	}

	const prefix = "$crossjoin("
	if !strings.HasPrefix(segment, prefix) || !strings.HasSuffix(segment, ")") {
		return nil, &SyntaxError{Message: "$all or $crossjoin expected", Text: segment}
	}
	list := segment[len(prefix) : len(segment)-1]
	if strings.TrimSpace(list) == "" {
		return nil, &SyntaxError{Message: "entity sets of $crossjoin expected", Text: list, Position: len(prefix)}
	}
	ec := p.cat.EntityContainer(edm.NullQName)
	if ec == nil {
		return nil, errSemantic(SemanticErrorKey_UnknownEntitySet, "default entity container is not found")
	}
	root := &CollectionRoot{}
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if ec.EntitySet(name) == nil {
			return nil, errSemantic(SemanticErrorKey_UnknownEntitySet, "entity set «%s» is not found", name)
		}
		if slices.Contains(root.CrossJoin, name) {
			return nil, errSemantic(SemanticErrorKey_UnknownEntitySet, "entity set «%s» is repeated in $crossjoin", name)
		}
		root.CrossJoin = append(root.CrossJoin, name)
	}
	if err := p.cfg.Features.Check(Feature_CrossJoin, "«$crossjoin»"); err != nil {
		return nil, err
	}
	return root, nil
}

// ParseQueryOptions parses system query options of request.
//
// Options map holds system options («$filter»), aliases («@p») and custom options.
// Custom options are ignored. Unknown system options are rejected
func (p *Parser) ParseQueryOptions(options map[string]string, referenced edm.IType, isCollection bool) (*QueryOptions, error) {
	qo := &QueryOptions{Aliases: Aliases{}}
	for _, name := range sortedKeys(options) {
		value := options[name]
		switch {
		case strings.HasPrefix(name, "@"):
			qo.Aliases[name] = value
			continue
		case !strings.HasPrefix(name, "$"):
			continue
		}
		switch name {
		case optionSelect, optionExpand, optionFilter, optionOrderBy, optionSearch, optionTop, optionSkip, optionCount:
			if !isCollection && slices.Contains(collectionOnlyQueryOptions, name) {
				return nil, errQueryOption(name, MsgNotAllowedForSingle, typeName(referenced))
			}
		case optionSkipToken:
			if err := p.cfg.Features.Check(Feature_SkipToken, "«$skiptoken»"); err != nil {
				return nil, err
			}
			qo.SkipToken = value
		case optionID:
			if err := p.cfg.Features.Check(Feature_ID, "«$id»"); err != nil {
				return nil, err
			}
			qo.ID = value
		case optionFormat:
			qo.Format = value
		default:
			return nil, errQueryOption(name, MsgUnknownOption, name)
		}
	}

	var err error
	if text, ok := options[optionSelect]; ok {
		if qo.Select, err = p.ParseSelect(text, referenced, isCollection); err != nil {
			return nil, err
		}
	}
	if text, ok := options[optionExpand]; ok {
		if qo.Expand, err = p.ParseExpand(text, referenced, qo.Aliases); err != nil {
			return nil, err
		}
	}
	if text, ok := options[optionFilter]; ok {
		if qo.Filter, err = p.ParseFilter(text, referenced, nil, qo.Aliases); err != nil {
			return nil, err
		}
	}
	if text, ok := options[optionOrderBy]; ok {
		if qo.OrderBy, err = p.ParseOrderBy(text, referenced, nil, qo.Aliases); err != nil {
			return nil, err
		}
	}
	if text, ok := options[optionSearch]; ok {
		if qo.Search, err = p.ParseSearch(text); err != nil {
			return nil, err
		}
	}
	if text, ok := options[optionTop]; ok {
		top, err := p.ParseTop(text)
		if err != nil {
			return nil, err
		}
		qo.Top = &top
	}
	if text, ok := options[optionSkip]; ok {
		skip, err := p.ParseSkip(text)
		if err != nil {
			return nil, err
		}
		qo.Skip = &skip
	}
	if text, ok := options[optionCount]; ok {
		count, err := p.ParseCount(text)
		if err != nil {
			return nil, err
		}
		qo.Count = &count
	}
	if logger.IsVerbose() {
		logger.Verbose("query options parsed:", strings.Join(sortedKeys(options), ", "))
	}
	return qo, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
