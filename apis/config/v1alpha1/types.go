/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package v1alpha1 contains the versioned configuration of the NSGA-III
// normalization step.
package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// GroupName is the API group of the configuration types.
	GroupName = "moea.x-k8s.io"

	// Version is the API version of this package.
	Version = "v1alpha1"

	// NormalizerArgsKind is the kind of NormalizerArgs documents.
	NormalizerArgsKind = "NormalizerArgs"
)

// +k8s:deepcopy-gen=true
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// NormalizerArgs holds the numeric thresholds of the NSGA-III normalizer.
// Unset fields are filled by SetDefaults_NormalizerArgs.
type NormalizerArgs struct {
	metav1.TypeMeta `json:",inline"`

	// Epsilon is the lower bound of an intercept produced by the degenerate
	// fallback. Defaults to 1e-10.
	Epsilon *float64 `json:"epsilon,omitempty"`

	// MinIntercept is the smallest solved intercept that is accepted; any
	// smaller one switches every objective to the fallback. Defaults to 0.001.
	MinIntercept *float64 `json:"minIntercept,omitempty"`

	// ExtremeWeight is the weight of the non-target objectives in the
	// achievement scalarizing function used to find extreme points.
	// Defaults to 1e-6.
	ExtremeWeight *float64 `json:"extremeWeight,omitempty"`

	// IdealPoint selects how the translation origin is folded from the
	// population. Defaults to Maximum.
	IdealPoint *IdealPointMode `json:"idealPoint,omitempty"`
}

// IdealPointMode names the fold used to compute the ideal point.
type IdealPointMode string

const (
	// IdealPointMaximum seeds every objective at +Inf and keeps the running
	// maximum. This is the historical behaviour of the normalizer.
	IdealPointMaximum IdealPointMode = "Maximum"

	// IdealPointMinimum keeps the per-objective minimum, the ideal point of
	// the NSGA-III paper.
	IdealPointMinimum IdealPointMode = "Minimum"
)
