// Package assets is a small asset tree packaged by assetpack itself. It keeps
// the generated output under test: the tree lives in testdata and
// assets_gen.go is regenerated from it.
package assets

//go:generate go run ../.. generate -c testdata/assetpack.yaml
