package algorithms

import (
	"fmt"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"

	"sigs.k8s.io/moea/apis/config/v1alpha1"
)

// Option configures a Normalizer, an Associator or a Selector.
type Option func(*options)

type options struct {
	args   *v1alpha1.NormalizerArgs
	logger logr.Logger
}

// WithArgs sets the normalizer thresholds. Unset fields are defaulted.
func WithArgs(args *v1alpha1.NormalizerArgs) Option {
	return func(o *options) {
		o.args = args
	}
}

// WithLogger sets the logger. The default is klog.Background().
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) (*options, error) {
	o := &options{
		logger: klog.Background(),
	}
	for _, opt := range opts {
		opt(o)
	}

	args := &v1alpha1.NormalizerArgs{}
	if o.args != nil {
		args = o.args.DeepCopy()
	}
	v1alpha1.SetDefaults_NormalizerArgs(args)
	if err := v1alpha1.ValidateNormalizerArgs(field.NewPath("normalizerArgs"), args); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", v1alpha1.NormalizerArgsKind, err)
	}
	o.args = args
	return o, nil
}
