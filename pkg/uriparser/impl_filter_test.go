/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/odata/pkg/edm"
)

func TestParseFilter(t *testing.T) {
	p := testParser()
	product := testEntity("Product")

	tests := []struct {
		filter string
		want   string
	}{
		{"Price gt 10 and Name eq 'Widget'", "(([Price] gt 10:Edm.SByte) and ([Name] eq 'Widget':Edm.String))"},
		{"not Discontinued", "(not [Discontinued])"},
		{"-Price lt 0", "((- [Price]) lt 0:Edm.SByte)"},
		{"Price add 1 gt 10 or Rating le 3", "((([Price] add 1:Edm.SByte) gt 10:Edm.SByte) or ([Rating] le 3:Edm.SByte))"},
		{"(Discontinued)", "[Discontinued]"},
		{"contains(Name,'a')", "contains([Name], 'a':Edm.String)"},
		{"length(Name) eq 3", "(length([Name]) eq 3:Edm.SByte)"},
		{"Color eq Demo.Color'Red'", "([Color] eq Demo.Color'Red':Demo.Color)"},
		{"Access has Demo.Access'Read'", "([Access] has Demo.Access'Read':Demo.Access)"},
		{"Category/Name eq 'Tools'", "([Category/Name] eq 'Tools':Edm.String)"},
		{"Address/City eq null", "([Address/City] eq null)"},
		{"Tags/any(t: t eq 'new')", "[Tags/any(t: ([t] eq 'new':Edm.String))]"},
		{"Tags/any()", "[Tags/any()]"},
		{"$it/Price gt 1", "([$it/Price] gt 1:Edm.SByte)"},
		{"isof(Demo.SpecialProduct)", "isof(type(Demo.SpecialProduct))"},
		{"cast(Price,Edm.Int32) gt 5", "(cast([Price], type(Edm.Int32)) gt 5:Edm.SByte)"},
		{"Released lt 2024-01-01", "([Released] lt 2024-01-01:Edm.Date)"},
		{"$root/Products(1)/Name eq Name", "([$root/Products(ID=1)/Name] eq [Name])"},
		{"Demo.Discounted(percent=10) gt 5", "([Demo.Discounted(percent=10)] gt 5:Edm.SByte)"},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			require := require.New(t)
			opt, err := p.ParseFilter(tt.filter, product, nil, nil)
			require.NoError(err)
			require.Equal(tt.want, Dump(opt.Expression))
		})
	}
}

func TestParseFilter_Tree(t *testing.T) {
	require := require.New(t)
	p := testParser()
	product := testEntity("Product")

	opt, err := p.ParseFilter("Price gt 10 and Name eq 'Widget'", product, nil, nil)
	require.NoError(err)

	boolean := edm.PrimitiveTypeOf(edm.PrimitiveKind_Boolean)
	expected := &Binary{
		Left: &Binary{
			Left:     &Member{Resources: []UriResource{&PrimitivePropertyResource{Property: product.StructuralProperty("Price")}}},
			Operator: BinaryOperator_Gt,
			Right:    &Literal{Text: "10", Typ: edm.PrimitiveTypeOf(edm.PrimitiveKind_SByte)},
			Typ:      boolean,
		},
		Operator: BinaryOperator_And,
		Right: &Binary{
			Left:     &Member{Resources: []UriResource{&PrimitivePropertyResource{Property: product.StructuralProperty("Name")}}},
			Operator: BinaryOperator_Eq,
			Right:    &Literal{Text: "'Widget'", Typ: edm.PrimitiveTypeOf(edm.PrimitiveKind_String)},
			Typ:      boolean,
		},
		Typ: boolean,
	}
	require.Equal(expected, opt.Expression)

	t.Run("parsing is repeatable", func(t *testing.T) {
		again, err := p.ParseFilter("Price gt 10 and Name eq 'Widget'", product, nil, nil)
		require.NoError(err)
		require.Equal(opt, again)
	})
}

func TestParseFilter_Lambda(t *testing.T) {
	require := require.New(t)
	p := testParser()

	opt, err := p.ParseFilter("Orders/any(o: o/Total gt 100)", testEntity("Customer"), nil, nil)
	require.NoError(err)
	require.Equal("[Orders/any(o: ([o/Total] gt 100:Edm.SByte))]", Dump(opt.Expression))

	m := opt.Expression.(*Member)
	require.Len(m.Resources, 2)
	lambda := m.Resources[1].(*LambdaResource)
	require.Equal(ResourceKind_LambdaAny, lambda.Kind())
	require.Equal("o", lambda.Variable)

	t.Run("variable is not visible outside of lambda", func(t *testing.T) {
		_, err := p.ParseFilter("Orders/any(o: o/Total gt 100) and o/Total gt 1", testEntity("Customer"), nil, nil)
		requireSemantic(t, err, SemanticErrorKey_UnknownProperty)
	})

	t.Run("all", func(t *testing.T) {
		opt, err := p.ParseFilter("Orders/all(x: x/Total lt 5)", testEntity("Customer"), nil, nil)
		require.NoError(err)
		require.Equal("[Orders/all(x: ([x/Total] lt 5:Edm.SByte))]", Dump(opt.Expression))
	})

	t.Run("count", func(t *testing.T) {
		opt, err := p.ParseFilter("Orders/$count gt 2", testEntity("Customer"), nil, nil)
		require.NoError(err)
		require.Equal("([Orders/$count] gt 2:Edm.SByte)", Dump(opt.Expression))
	})
}

func TestParseFilter_TypeCast(t *testing.T) {
	product := testEntity("Product")

	t.Run("gated by feature", func(t *testing.T) {
		_, err := testParser().ParseFilter("Demo.SpecialProduct/Bonus gt 1", product, nil, nil)
		requireUnsupported(t, err, Feature_TypeCast)
	})

	t.Run("enabled", func(t *testing.T) {
		require := require.New(t)
		opt, err := testParser(Feature_TypeCast).ParseFilter("Demo.SpecialProduct/Bonus gt 1", product, nil, nil)
		require.NoError(err)
		require.Equal("([Demo.SpecialProduct/Bonus] gt 1:Edm.SByte)", Dump(opt.Expression))
		require.Equal(testEntity("SpecialProduct"), opt.Expression.(*Binary).Left.(*Member).StartTypeFilter)
	})

	t.Run("by alias", func(t *testing.T) {
		require := require.New(t)
		opt, err := testParser(Feature_TypeCast).ParseFilter("D.SpecialProduct/Bonus gt 1", product, nil, nil)
		require.NoError(err)
		require.Equal("([Demo.SpecialProduct/Bonus] gt 1:Edm.SByte)", Dump(opt.Expression))
	})

	t.Run("incompatible type", func(t *testing.T) {
		_, err := testParser(Feature_TypeCast).ParseFilter("Demo.Category/Name eq 'x'", product, nil, nil)
		requireSemantic(t, err, SemanticErrorKey_IncompatibleTypes)
	})
}

func TestParseFilter_Functions(t *testing.T) {
	p := testParser()

	t.Run("overload is chosen by parameter names in any order", func(t *testing.T) {
		require := require.New(t)
		e1, err := parseExpr(p, "Demo.TopProducts(count=3,minPrice=1.5)", nil, nil)
		require.NoError(err)
		e2, err := parseExpr(p, "Demo.TopProducts(minPrice=1.5,count=3)", nil, nil)
		require.NoError(err)

		f1 := e1.(*Member).Resources[0].(*FunctionResource)
		f2 := e2.(*Member).Resources[0].(*FunctionResource)
		require.Same(f1.Function, f2.Function)
		require.Equal([]string{"count", "minPrice"}, f1.Function.ParameterNames())
		require.True(e1.(*Member).IsCollection())

		e3, err := parseExpr(p, "Demo.TopProducts(count=3)", nil, nil)
		require.NoError(err)
		require.NotSame(f1.Function, e3.(*Member).Resources[0].(*FunctionResource).Function)
	})

	t.Run("composable function continues path", func(t *testing.T) {
		require := require.New(t)
		opt, err := p.ParseFilter("Products/Demo.Cheapest()/Name eq 'x'", testEntity("Category"), nil, nil)
		require.NoError(err)
		require.Equal("([Products/Demo.Cheapest()/Name] eq 'x':Edm.String)", Dump(opt.Expression))
	})

	t.Run("argument out of parameter range", func(t *testing.T) {
		_, err := p.ParseFilter("Demo.Discounted(percent=300) gt 5", testEntity("Product"), nil, nil)
		requireSemantic(t, err, SemanticErrorKey_IncompatibleTypes)
	})

	t.Run("null for non-nullable parameter", func(t *testing.T) {
		_, err := p.ParseFilter("Demo.Discounted(percent=@p) gt 5", testEntity("Product"), nil, Aliases{"@p": "null"})
		requireSemantic(t, err, SemanticErrorKey_InvalidParameterValue)
	})

	t.Run("JSON operand", func(t *testing.T) {
		for _, filter := range []string{`Name eq [1,2]`, `Address eq {"City":"x"}`} {
			_, err := p.ParseFilter(filter, testEntity("Product"), nil, nil)
			requireSemantic(t, err, SemanticErrorKey_IncompatibleTypes)
		}
	})

	t.Run("unknown function", func(t *testing.T) {
		_, err := p.ParseFilter("Demo.Nothing(x=1) gt 5", testEntity("Product"), nil, nil)
		require.Error(t, err)
	})
}

func TestParseFilter_Errors(t *testing.T) {
	p := testParser()
	product := testEntity("Product")

	t.Run("syntax", func(t *testing.T) {
		for _, filter := range []string{
			"Name eq",
			"(Discontinued",
			"Price gt 1 1",
			"contains(Name",
			"substring(Name)",
			"",
		} {
			t.Run(filter, func(t *testing.T) {
				_, err := p.ParseFilter(filter, product, nil, nil)
				require.ErrorIs(t, err, ErrSyntax)
			})
		}
	})

	t.Run("semantic", func(t *testing.T) {
		tests := []struct {
			filter string
			key    SemanticErrorKey
		}{
			{"Price", SemanticErrorKey_IncompatibleTypes},
			{"Tags", SemanticErrorKey_CollectionNotAllowed},
			{"Price gt 'a'", SemanticErrorKey_IncompatibleTypes},
			{"Name add 1 eq 2", SemanticErrorKey_IncompatibleTypes},
			{"year(Name) eq 2020", SemanticErrorKey_IncompatibleTypes},
			{"Color has Demo.Access'Read'", SemanticErrorKey_IncompatibleTypes},
			{"Color eq Demo.Color'Red,Blue'", SemanticErrorKey_IncompatibleTypes},
			{"Color eq Demo.Color'Black'", SemanticErrorKey_InvalidParameterValue},
			{"Foo eq 1", SemanticErrorKey_UnknownProperty},
			{"Category(1)/Name eq 'x'", SemanticErrorKey_KeyPredicate},
		}
		for _, tt := range tests {
			t.Run(tt.filter, func(t *testing.T) {
				_, err := p.ParseFilter(tt.filter, product, nil, nil)
				requireSemantic(t, err, tt.key)
			})
		}
	})

	t.Run("nesting depth", func(t *testing.T) {
		require := require.New(t)
		shallow := New(testCatalog(), Config{MaxDepth: 3})
		_, err := shallow.ParseFilter("(((Discontinued)))", product, nil, nil)
		require.ErrorIs(err, ErrSyntax)

		_, err = p.ParseFilter("(((Discontinued)))", product, nil, nil)
		require.NoError(err)
	})
}

func TestParseFilter_CrossJoin(t *testing.T) {
	crossjoin := []string{"Products", "Categories"}

	t.Run("gated by feature", func(t *testing.T) {
		_, err := testParser().ParseFilter("Products/CategoryID eq Categories/ID", nil, crossjoin, nil)
		requireUnsupported(t, err, Feature_CrossJoin)
	})

	t.Run("enabled", func(t *testing.T) {
		require := require.New(t)
		opt, err := testParser(Feature_CrossJoin).ParseFilter("Products/CategoryID eq Categories/ID", nil, crossjoin, nil)
		require.NoError(err)
		require.Equal("([Products/CategoryID] eq [Categories/ID])", Dump(opt.Expression))
	})

	t.Run("entity set outside of crossjoin", func(t *testing.T) {
		_, err := testParser(Feature_CrossJoin).ParseFilter("Customers/ID eq 1", nil, crossjoin, nil)
		requireSemantic(t, err, SemanticErrorKey_UnknownEntitySet)
	})
}

func TestCast(t *testing.T) {
	p := testParser()
	product := testEntity("Product")

	tests := []struct {
		expr string
		want string
	}{
		{"cast(Demo.SpecialProduct)", "Demo.SpecialProduct"},
		{"cast(Demo.Product)", "Demo.Product"},
		{"cast(Address,Demo.PostalAddress)", "Demo.PostalAddress"},
		{"cast(Price,Edm.Int32)", "Edm.Int32"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			require := require.New(t)
			e, err := parseExpr(p, tt.expr, product, nil)
			require.NoError(err)
			require.Equal(tt.want, e.Type().QName().String())
		})
	}

	for _, expr := range []string{
		"cast(Demo.Address)",
		"cast(Demo.Category)",
		"cast(Address,Demo.Product)",
		"cast(Name,Demo.Address)",
		"cast(Edm.String)",
	} {
		t.Run("incompatible "+expr, func(t *testing.T) {
			_, err := parseExpr(p, expr, product, nil)
			requireSemantic(t, err, SemanticErrorKey_IncompatibleTypes)
		})
	}
}
