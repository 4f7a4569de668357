package tests

import (
	"testing"

	"github.com/aretw0/offhook/internal/validator"
	"github.com/aretw0/offhook/pkg/domain"
	"github.com/aretw0/offhook/pkg/ports"
)

// DefinitionLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.DefinitionLoader.
func DefinitionLoaderContractTest(t *testing.T, loader ports.DefinitionLoader) {
	t.Helper()

	// 1. Load returns a valid definition
	t.Run("Load_Valid", func(t *testing.T) {
		def, err := loader.Load()
		if err != nil {
			t.Fatalf("unexpected error loading definition: %v", err)
		}
		if err := validator.ValidateDefinition(def); err != nil {
			t.Errorf("loaded definition is invalid: %v", err)
		}
	})

	// 2. Results are owned by the caller
	t.Run("Load_Isolated", func(t *testing.T) {
		first, err := loader.Load()
		if err != nil {
			t.Fatalf("unexpected error loading definition: %v", err)
		}
		want := len(first.Table[first.Initial])
		first.Table[first.Initial] = nil
		first.Table[domain.OnHook] = []domain.Rule{{Trigger: domain.CallDialed, Target: domain.OffHook}}

		second, err := loader.Load()
		if err != nil {
			t.Fatalf("unexpected error loading definition: %v", err)
		}
		if got := len(second.Table[second.Initial]); got != want {
			t.Errorf("mutating a loaded definition leaked into the loader: got %d rules, want %d", got, want)
		}
	})
}
