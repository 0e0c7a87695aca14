// Package multiobjective wires the NSGA-III normalization and association
// steps from a versioned configuration object.
package multiobjective

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"sigs.k8s.io/moea/apis/config/v1alpha1"
	"sigs.k8s.io/moea/pkg/multiobjective/algorithms"
	"sigs.k8s.io/moea/pkg/multiobjective/framework"
)

const (
	Name = "MultiObjective"
)

// New builds a Selector for the reference directions w from obj, which must
// be a *v1alpha1.NormalizerArgs or nil for the defaults. The logger is taken
// from ctx.
func New(ctx context.Context, obj runtime.Object, w *framework.Weights) (*algorithms.Selector, error) {
	logger := klog.FromContext(ctx).WithName(Name)
	logger.V(5).Info("creating instance of MultiObjective")

	args := &v1alpha1.NormalizerArgs{}
	if obj != nil {
		var ok bool
		args, ok = obj.(*v1alpha1.NormalizerArgs)
		if !ok {
			return nil, fmt.Errorf("want args to be of type NormalizerArgs, got %T", obj)
		}
		if args == nil {
			args = &v1alpha1.NormalizerArgs{}
		}
	}
	logger.V(5).Info("MultiObjective called with args",
		"epsilon", ptr.Deref(args.Epsilon, v1alpha1.DefaultEpsilon),
		"minIntercept", ptr.Deref(args.MinIntercept, v1alpha1.DefaultMinIntercept),
		"extremeWeight", ptr.Deref(args.ExtremeWeight, v1alpha1.DefaultExtremeWeight),
		"idealPoint", ptr.Deref(args.IdealPoint, v1alpha1.DefaultIdealPoint))

	return algorithms.NewSelector(w,
		algorithms.WithArgs(args),
		algorithms.WithLogger(logger),
	)
}
