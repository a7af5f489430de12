// Copyright 2026 The Simplebridge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import "strings"

// ConfigurationError collects all configuration problems found during
// validation so that the caller sees the whole list at once
type ConfigurationError struct {
	Problems []string
}

func (e ConfigurationError) Error() string {
	return "invalid bridge configuration: " + strings.Join(e.Problems, "; ")
}

// AnalysisRuntimeError wraps an unexpected failure inside RunAnalysis
type AnalysisRuntimeError struct {
	Cause error
}

func (e AnalysisRuntimeError) Error() string {
	return "bridge analysis failed: " + e.Cause.Error()
}

// Unwrap exposes the underlying cause
func (e AnalysisRuntimeError) Unwrap() error { return e.Cause }
