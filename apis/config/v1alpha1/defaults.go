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

package v1alpha1

import (
	"k8s.io/utils/ptr"
)

var (
	// DefaultEpsilon is the default floor of fallback intercepts.
	DefaultEpsilon = 1e-10

	// DefaultMinIntercept is the default smallest accepted solved intercept.
	DefaultMinIntercept = 0.001

	// DefaultExtremeWeight is the default weight of non-target objectives in
	// the extreme point search.
	DefaultExtremeWeight = 1e-6

	// DefaultIdealPoint is the default ideal point fold.
	DefaultIdealPoint = IdealPointMaximum
)

// SetDefaults_NormalizerArgs sets the default parameters for the normalizer.
func SetDefaults_NormalizerArgs(obj *NormalizerArgs) {
	if obj.APIVersion == "" {
		obj.APIVersion = GroupName + "/" + Version
	}
	if obj.Kind == "" {
		obj.Kind = NormalizerArgsKind
	}
	if obj.Epsilon == nil {
		obj.Epsilon = ptr.To(DefaultEpsilon)
	}
	if obj.MinIntercept == nil {
		obj.MinIntercept = ptr.To(DefaultMinIntercept)
	}
	if obj.ExtremeWeight == nil {
		obj.ExtremeWeight = ptr.To(DefaultExtremeWeight)
	}
	if obj.IdealPoint == nil {
		obj.IdealPoint = ptr.To(DefaultIdealPoint)
	}
}

// DefaultNormalizerArgs returns a fully defaulted NormalizerArgs.
func DefaultNormalizerArgs() *NormalizerArgs {
	args := &NormalizerArgs{}
	SetDefaults_NormalizerArgs(args)
	return args
}
