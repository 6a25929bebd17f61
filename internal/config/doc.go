// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package config defines the format-agnostic configuration model for the
// item hierarchy, along with the Loader interface for reading it from
// various file formats and the rules that say which attributes carry
// relative references.
//
// The `config.Model` is the single source of truth for the `builder`
// package. Concrete loaders, such as for HCL or YAML, are provided in
// separate packages.
package config
