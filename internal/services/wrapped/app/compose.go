package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/wrapped/internal/services/wrapped/module"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/requestmeta"
)

// ComposeInput carries modules and shared composition contracts.
type ComposeInput struct {
	Dependencies        module.Dependencies
	Modules             []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds a root HTTP handler from modules. Every module is wrapped so
// state-changing requests must prove they came from this origin.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	wrap := requireSameOriginMutation(input.RequestSchemePolicy)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature, input.Dependencies)
		if err != nil {
			return nil, err
		}
		if err := mountModule(root, feature, mount.Handler, prefix, seen, wrap); err != nil {
			return nil, err
		}
		for _, alias := range mount.Aliases {
			alias = strings.TrimSpace(alias)
			if err := validateAlias(alias); err != nil {
				return nil, fmt.Errorf("mount module %q has invalid alias %q: %w", feature.ID(), alias, err)
			}
			if err := mountModule(root, feature, mount.Handler, alias, seen, wrap); err != nil {
				return nil, err
			}
		}
	}

	return root, nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	handler http.Handler,
	pattern string,
	seen map[string]string,
	wrap func(http.Handler) http.Handler,
) error {
	if root == nil || feature == nil {
		return nil
	}
	if previous, ok := seen[pattern]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), pattern, previous)
	}
	seen[pattern] = feature.ID()

	if wrap != nil {
		handler = wrap(handler)
	}
	root.Handle(pattern, handler)
	return nil
}

func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

// validateAlias accepts exact paths only; a trailing slash would turn the
// alias into a second subtree.
func validateAlias(alias string) error {
	if alias == "" {
		return fmt.Errorf("alias is required")
	}
	if !strings.HasPrefix(alias, "/") {
		return fmt.Errorf("alias must begin with /")
	}
	if strings.HasSuffix(alias, "/") {
		return fmt.Errorf("alias must not end with /")
	}
	return nil
}

func requireSameOriginMutation(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !requestmeta.HasSameOriginProofWithPolicy(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
