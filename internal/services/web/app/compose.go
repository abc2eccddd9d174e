// Package app composes feature modules into the root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/homeoinvent/homeoinvent/internal/services/web/module"
	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
)

// ComposeInput carries the modules to mount and extra root handlers.
type ComposeInput struct {
	Modules []module.Module
	Static  http.Handler
}

// Compose builds a root HTTP handler from modules. Each module owns one
// prefix; non-root prefixes are also mounted without their trailing slash.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if err := mountModule(root, feature, mount.Handler, prefix, seen); err != nil {
			return nil, err
		}
		if alias := slashlessPrefixAlias(prefix); alias != "" {
			if err := mountModule(root, feature, mount.Handler, alias, seen); err != nil {
				return nil, err
			}
		}
	}

	if input.Static != nil {
		if err := mountHandler(root, "static", input.Static, routepath.StaticPrefix, seen); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func mountModule(root *http.ServeMux, feature module.Module, handler http.Handler, prefix string, seen map[string]string) error {
	return mountHandler(root, feature.ID(), handler, prefix, seen)
}

func mountHandler(root *http.ServeMux, id string, handler http.Handler, prefix string, seen map[string]string) error {
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", id, prefix, previous)
	}
	seen[prefix] = id
	root.Handle(prefix, handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, mount.Prefix, nil
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

func slashlessPrefixAlias(prefix string) string {
	if prefix == routepath.Root || !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}
