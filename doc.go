// Package main provides the xcteam CLI tool for preparing Xcode projects
// for automated code signing.
//
// For the library API, see the subpackages:
//
//	import "github.com/aluedeke/xcteam/pkg/xcodeproj"
//	import "github.com/aluedeke/xcteam/pkg/signing"
//
// # Installation
//
// Install the CLI:
//
//	go install github.com/aluedeke/xcteam@latest
package main
