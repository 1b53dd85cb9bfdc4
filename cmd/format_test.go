package cmd

import (
	"testing"

	"github.com/jdwpgo/jdwpgo/jdwp"
	"github.com/stretchr/testify/require"
)

func TestFormatTypeTag(t *testing.T) {
	tests := []struct {
		tag  jdwp.TypeTag
		want string
	}{
		{jdwp.TypeTagClass, "class"},
		{jdwp.TypeTagInterface, "interface"},
		{jdwp.TypeTagArray, "array"},
		{jdwp.TypeTag(99), "tag(99)"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, formatTypeTag(tt.tag))
	}
}

func TestFormatClassStatus(t *testing.T) {
	tests := []struct {
		name   string
		status jdwp.ClassStatus
		want   string
	}{
		{"none", 0, "none"},
		{"verified only", jdwp.ClassVerified, "verified"},
		{"verified and prepared", jdwp.ClassVerified | jdwp.ClassPrepared, "verified|prepared"},
		{"all flags", jdwp.ClassVerified | jdwp.ClassPrepared | jdwp.ClassInitialized | jdwp.ClassError,
			"verified|prepared|initialized|error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, formatClassStatus(tt.status))
		})
	}
}

func TestFormatThreadStatus(t *testing.T) {
	tests := []struct {
		status jdwp.ThreadStatus
		want   string
	}{
		{jdwp.ThreadZombie, "zombie"},
		{jdwp.ThreadRunning, "running"},
		{jdwp.ThreadSleeping, "sleeping"},
		{jdwp.ThreadMonitor, "monitor"},
		{jdwp.ThreadWait, "wait"},
		{jdwp.ThreadStatus(42), "status(42)"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, formatThreadStatus(tt.status))
	}
}

func TestFormatSuspendStatus(t *testing.T) {
	require.Equal(t, "suspended", formatSuspendStatus(jdwp.Suspended))
	require.Equal(t, "running", formatSuspendStatus(jdwp.NotSuspended))
}
