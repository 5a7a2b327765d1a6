package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"donation-ledger/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCommand_IssuesVerifiableToken(t *testing.T) {
	t.Setenv("DLG_JWT_SECRET", "cli-test-secret")
	t.Setenv("DLG_JWT_ISSUER", "ledger-test")

	var stdout, stderr bytes.Buffer
	cmd := rootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"token", "--operator", "ops@campaign"})

	require.NoError(t, cmd.Execute())

	claims, err := service.NewJWTTokenService("cli-test-secret", time.Hour, "ledger-test").
		Validate(strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	assert.Equal(t, "ops@campaign", claims.Operator)
	assert.Contains(t, stderr.String(), "expires")
}

func TestTokenCommand_RequiresSecretAndOperator(t *testing.T) {
	t.Setenv("DLG_JWT_SECRET", "")

	cmd := rootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"token", "--operator", "ops"})
	assert.ErrorContains(t, cmd.Execute(), "jwt.secret")

	t.Setenv("DLG_JWT_SECRET", "s")
	cmd = rootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"token"})
	assert.Error(t, cmd.Execute())
}
