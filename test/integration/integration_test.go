package integration

import (
	"context"
	"os"
	"testing"

	"github.com/cucumber/godog"

	"github.com/doodlesbykumbi/accrisk/pkg/audit"
)

// TestFeatures runs the godog features against a PostgreSQL container.
// ACCRISK_FEATURE_TAGS narrows the run, e.g. "~@slow".
func TestFeatures(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TEST=1 to run.")
	}
	audit.SetEnabled(false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tc, err := NewTestContext(ctx)
	if err != nil {
		t.Fatalf("Failed to create test context: %v", err)
	}
	defer tc.Close(ctx)

	suite := godog.TestSuite{
		Name: "accrisk",
		ScenarioInitializer: func(sc *godog.ScenarioContext) {
			NewStepsContext(tc).RegisterSteps(sc)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			Tags:     os.Getenv("ACCRISK_FEATURE_TAGS"),
			Strict:   true,
			TestingT: t,
		},
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature run failed with status %d", status)
	}
}
