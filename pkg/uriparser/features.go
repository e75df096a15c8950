/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"fmt"
	"strings"
)

// Feature which is recognized by grammar but is gated, disabled by default
type Feature uint16

const (
	Feature_TypeCast Feature = 1 << iota
	Feature_Levels
	Feature_ExpandRef
	Feature_CrossJoin
	Feature_SkipToken
	Feature_ID
	Feature_All

	Feature_null Feature = 0
)

var featureNames = map[Feature]string{
	Feature_TypeCast:  "typecast",
	Feature_Levels:    "levels",
	Feature_ExpandRef: "expandref",
	Feature_CrossJoin: "crossjoin",
	Feature_SkipToken: "skiptoken",
	Feature_ID:        "id",
	Feature_All:       "all",
}

func (f Feature) String() string {
	if n, ok := featureNames[f]; ok {
		return n
	}
	return fmt.Sprintf("Feature(%#x)", uint16(f))
}

// Parses feature name as returned by Feature.String
func ParseFeature(s string) (Feature, error) {
	for f, n := range featureNames {
		if strings.EqualFold(n, s) {
			return f, nil
		}
	}
	return Feature_null, fmt.Errorf("unknown feature «%s»", s)
}

// Set of enabled features
type Features uint16

func FeaturesOf(ff ...Feature) Features {
	var res Features
	for _, f := range ff {
		res = res.With(f)
	}
	return res
}

func (ff Features) Has(f Feature) bool { return ff&Features(f) != 0 }

func (ff Features) With(f Feature) Features { return ff | Features(f) }

// The single feature gate. Returns UnsupportedError if feature is not enabled
func (ff Features) Check(f Feature, construct string) error {
	if ff.Has(f) {
		return nil
	}
	return &UnsupportedError{Feature: f, Construct: construct}
}

func (ff Features) String() string {
	names := []string{}
	for f := Feature_TypeCast; f <= Feature_All; f <<= 1 {
		if ff.Has(f) {
			names = append(names, f.String())
		}
	}
	return strings.Join(names, ",")
}
