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
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"
	"sigs.k8s.io/yaml"
)

// LoadNormalizerArgs decodes a YAML or JSON document into NormalizerArgs,
// applies defaults and validates the result. Unknown fields are rejected.
func LoadNormalizerArgs(data []byte) (*NormalizerArgs, error) {
	args := &NormalizerArgs{}
	if err := yaml.UnmarshalStrict(data, args); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", NormalizerArgsKind, err)
	}
	if args.Kind != "" && args.Kind != NormalizerArgsKind {
		return nil, fmt.Errorf("want kind %s, got %q", NormalizerArgsKind, args.Kind)
	}

	SetDefaults_NormalizerArgs(args)
	if err := ValidateNormalizerArgs(field.NewPath("normalizerArgs"), args); err != nil {
		return nil, err
	}
	return args, nil
}
