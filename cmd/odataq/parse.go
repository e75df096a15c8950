/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/edmschema"
	"github.com/voedger/odata/pkg/edmschema/boltstore"
	"github.com/voedger/odata/pkg/metrics"
	"github.com/voedger/odata/pkg/objcache"
	"github.com/voedger/odata/pkg/uriparser"
)

func newParseCmd() *cobra.Command {
	params := parseParams{}
	cmd := &cobra.Command{
		Use:   "parse [flags] option=value...",
		Short: "parse system query options against schema",
		Example: `  odataq parse --schema shop.yaml --set Items '$filter=Price gt 5' '$orderby=Name desc' '$top=10'
  odataq parse --db shop.db --set Items --key 5 '$expand=Lines'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return parse(cmd.OutOrStdout(), params, args)
		},
	}
	cmd.Flags().StringVar(&params.SchemaFile, "schema", "", "schema file, CSDL XML («.xml») or YAML")
	cmd.Flags().StringVar(&params.DBFile, "db", "", "schema store database created by «import» command")
	cmd.Flags().StringVar(&params.EntitySet, "set", "", "entity set or singleton of default entity container")
	cmd.Flags().StringVar(&params.TypeName, "type", "", "qualified name of referenced structured type")
	cmd.Flags().StringVar(&params.Key, "key", "", "key predicate of single entity, e.g. «5» or «ItemID=1,No=2»")
	cmd.Flags().BoolVar(&params.Single, "single", false, "referenced resource is single-valued")
	cmd.Flags().StringVar(&params.Cache, "cache", objcache.Unbounded.String(), "catalog cache provider: Unbounded, Hashicorp or Theine")
	cmd.Flags().IntVar(&params.CacheSize, "cache-size", objcache.DefaultCacheSize, "size of bounded catalog caches")
	cmd.Flags().StringSliceVar(&params.Features, "feature", nil, "enable gated feature, may be repeated")
	cmd.Flags().IntVar(&params.MaxDepth, "max-depth", uriparser.DefaultMaxDepth, "maximum expression nesting depth")
	cmd.Flags().BoolVar(&params.Metrics, "metrics", false, "print catalog lookup metrics")
	return cmd
}

func parse(w io.Writer, params parseParams, args []string) error {
	options, err := splitOptions(args)
	if err != nil {
		return err
	}

	provider, closeProvider, err := openProvider(params)
	if err != nil {
		return err
	}
	defer closeProvider()

	catParams, err := catalogParams(params)
	if err != nil {
		return err
	}
	var catMetrics *metrics.CatalogMetrics
	registry := prometheus.NewRegistry()
	if params.Metrics {
		catMetrics = metrics.NewCatalogMetrics()
		catMetrics.MustRegister(registry)
		catParams.Metrics = catMetrics
	}
	cat := edm.NewCatalog(provider, catParams)

	cfg := uriparser.NewDefaultConfig()
	cfg.MaxDepth = params.MaxDepth
	for _, name := range params.Features {
		f, err := uriparser.ParseFeature(name)
		if err != nil {
			return err
		}
		cfg.Features = cfg.Features.With(f)
	}
	p := uriparser.New(cat, cfg)

	referenced, isCollection, err := referencedType(cat, params)
	if err != nil {
		return err
	}

	if params.Key != "" {
		et, ok := referenced.(*edm.EntityType)
		if !ok {
			return fmt.Errorf("key predicate requires entity type, got «%v»", referenced.QName())
		}
		keys, err := p.ParseKeyPredicate(params.Key+")", et, nil, aliasesOf(options))
		if err != nil {
			return err
		}
		fmt.Fprintln(w, optionKey+outputSep+uriparser.DumpParameters(keys))
		isCollection = false
	}

	qo, err := p.ParseQueryOptions(options, referenced, isCollection)
	if err != nil {
		return err
	}
	printQueryOptions(w, qo)

	if catMetrics != nil {
		return printMetrics(w, registry)
	}
	return nil
}

// Splits «name=value» arguments into options map
func splitOptions(args []string) (map[string]string, error) {
	options := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, optionAssign)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid option «%s», expected name=value", arg)
		}
		if _, dup := options[name]; dup {
			return nil, fmt.Errorf("option «%s» specified more than once", name)
		}
		options[name] = value
	}
	return options, nil
}

func aliasesOf(options map[string]string) uriparser.Aliases {
	aliases := uriparser.Aliases{}
	for name, value := range options {
		if strings.HasPrefix(name, "@") {
			aliases[name] = value
		}
	}
	return aliases
}

func openProvider(params parseParams) (edm.ISchemaProvider, func(), error) {
	switch {
	case params.SchemaFile != "" && params.DBFile != "":
		return nil, nil, errors.New("flags --schema and --db are mutually exclusive")
	case params.SchemaFile != "":
		p, err := edmschema.LoadFile(params.SchemaFile)
		return p, func() {}, err
	case params.DBFile != "":
		s, err := boltstore.Open(params.DBFile)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				logger.Error("schema store close:", err)
			}
		}, nil
	}
	return nil, nil, errors.New("either --schema or --db flag is required")
}

func catalogParams(params parseParams) (edm.CatalogParams, error) {
	cp := edm.NewDefaultCatalogParams()
	provider, ok := objcache.ParseCacheProvider(params.Cache)
	if !ok {
		return cp, fmt.Errorf("unknown cache provider «%s»", params.Cache)
	}
	cp.CacheProvider = provider
	cp.CacheSize = params.CacheSize
	return cp, nil
}

// Returns type addressed by --set or --type flag and whether it is collection
func referencedType(cat edm.ICatalog, params parseParams) (edm.IType, bool, error) {
	switch {
	case params.EntitySet != "" && params.TypeName != "":
		return nil, false, errors.New("flags --set and --type are mutually exclusive")
	case params.EntitySet != "":
		ec := cat.EntityContainer(edm.NullQName)
		if ec == nil {
			return nil, false, errors.New("schema has no entity container")
		}
		if es := ec.EntitySet(params.EntitySet); es != nil {
			if et := es.EntityType(); et != nil {
				return et, !params.Single, nil
			}
			return nil, false, fmt.Errorf("entity type of entity set «%s» not found", params.EntitySet)
		}
		if s := ec.Singleton(params.EntitySet); s != nil {
			if et := s.EntityType(); et != nil {
				return et, false, nil
			}
			return nil, false, fmt.Errorf("entity type of singleton «%s» not found", params.EntitySet)
		}
		return nil, false, fmt.Errorf("entity set or singleton «%s» not found in «%v»", params.EntitySet, ec.QName())
	case params.TypeName != "":
		name, err := edm.ParseQName(params.TypeName)
		if err != nil {
			return nil, false, err
		}
		t := cat.Type(name)
		if t == nil {
			return nil, false, fmt.Errorf("type «%v» not found", name)
		}
		return t, !params.Single, nil
	}
	return nil, false, errors.New("either --set or --type flag is required")
}
