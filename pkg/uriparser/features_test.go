/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeatures(t *testing.T) {
	t.Run("parse names", func(t *testing.T) {
		for f, name := range featureNames {
			t.Run(name, func(t *testing.T) {
				require := require.New(t)
				require.Equal(name, f.String())
				parsed, err := ParseFeature(name)
				require.NoError(err)
				require.Equal(f, parsed)
			})
		}
	})

	t.Run("parse is case insensitive", func(t *testing.T) {
		f, err := ParseFeature("TypeCast")
		require.NoError(t, err)
		require.Equal(t, Feature_TypeCast, f)
	})

	t.Run("unknown", func(t *testing.T) {
		require := require.New(t)
		_, err := ParseFeature("batch")
		require.Error(err)
		require.Equal("Feature(0x100)", Feature(0x100).String())
	})

	t.Run("set", func(t *testing.T) {
		require := require.New(t)
		ff := FeaturesOf(Feature_All, Feature_TypeCast)
		require.True(ff.Has(Feature_TypeCast))
		require.True(ff.Has(Feature_All))
		require.False(ff.Has(Feature_Levels))
		require.Equal("typecast,all", ff.String())
		require.Empty(Features(0).String())

		require.NoError(ff.Check(Feature_All, "«$all»"))
		err := ff.Check(Feature_ID, "«$id»")
		requireUnsupported(t, err, Feature_ID)
		require.Contains(err.Error(), "«$id»")
	})
}
