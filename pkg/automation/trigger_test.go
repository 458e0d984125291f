package automation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTriggerString(t *testing.T) {
	assert.Equal(t, "manual", TriggerManual.String())
	assert.Equal(t, "timing", TriggerTiming.String())
	assert.Equal(t, []string{"manual", "timing"}, TriggerStrings())

	got, err := TriggerString("Timing")
	require.NoError(t, err)
	assert.Equal(t, TriggerTiming, got)

	_, err = TriggerString("cron")
	assert.Error(t, err)
	assert.False(t, Trigger(7).IsATrigger())
}

func TestTriggerEncoding(t *testing.T) {
	data, err := json.Marshal(struct {
		Trigger Trigger `json:"trigger"`
	}{TriggerTiming})
	require.NoError(t, err)
	assert.JSONEq(t, `{"trigger":"timing"}`, string(data))

	var fromJSON Trigger
	require.NoError(t, json.Unmarshal([]byte(`"manual"`), &fromJSON))
	assert.Equal(t, TriggerManual, fromJSON)

	var fromYAML struct {
		Trigger Trigger `yaml:"trigger"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("trigger: timing\n"), &fromYAML))
	assert.Equal(t, TriggerTiming, fromYAML.Trigger)
}
