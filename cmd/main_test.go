package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "none", args: []string{"serve"}},
		{name: "short before command", args: []string{"-c", "prod.yml", "serve"}, want: []string{"-c", "prod.yml"}},
		{name: "long after command", args: []string{"verify", "--config", "prod.yml", "--id", "x"}, want: []string{"-c", "prod.yml"}},
		{name: "short with equals", args: []string{"migrate", "-c=prod.yml"}, want: []string{"-c=prod.yml"}},
		{name: "long with equals", args: []string{"migrate", "--config=prod.yml"}, want: []string{"-c=prod.yml"}},
		{name: "dangling flag", args: []string{"serve", "-c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, configArgs(tt.args))
		})
	}
}
