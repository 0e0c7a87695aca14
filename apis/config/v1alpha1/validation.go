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
	"math"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ValidateNormalizerArgs validates that NormalizerArgs are correct. It
// expects defaulted args and reports every violation at once.
func ValidateNormalizerArgs(path *field.Path, args *NormalizerArgs) error {
	var allErrs field.ErrorList

	allErrs = append(allErrs, validatePositive(path.Child("epsilon"), args.Epsilon)...)
	allErrs = append(allErrs, validatePositive(path.Child("minIntercept"), args.MinIntercept)...)

	weightPath := path.Child("extremeWeight")
	allErrs = append(allErrs, validatePositive(weightPath, args.ExtremeWeight)...)
	if args.ExtremeWeight != nil && *args.ExtremeWeight > 1 {
		allErrs = append(allErrs, field.Invalid(weightPath, *args.ExtremeWeight, "must not exceed the target objective weight 1"))
	}

	idealPath := path.Child("idealPoint")
	switch {
	case args.IdealPoint == nil:
		allErrs = append(allErrs, field.Required(idealPath, ""))
	case *args.IdealPoint != IdealPointMaximum && *args.IdealPoint != IdealPointMinimum:
		allErrs = append(allErrs, field.NotSupported(idealPath, string(*args.IdealPoint),
			[]string{string(IdealPointMaximum), string(IdealPointMinimum)}))
	}

	return allErrs.ToAggregate()
}

func validatePositive(path *field.Path, v *float64) field.ErrorList {
	if v == nil {
		return field.ErrorList{field.Required(path, "")}
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 {
		return field.ErrorList{field.Invalid(path, *v, "must be a finite value greater than 0")}
	}
	return nil
}
