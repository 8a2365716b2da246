package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/config"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/container"
)

func TestSeed_OnlyIntoEmptyStore(t *testing.T) {
	ctx := context.Background()
	c := container.New(&config.Config{BcryptCost: bcrypt.MinCost}, nil, container.MemoryRepositories(), container.Options{})

	n, err := seed(ctx, c, "demo12345")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	offers, err := c.Directory.ListActiveOffers(ctx)
	require.NoError(t, err)
	assert.Len(t, offers, 3)

	// second run leaves the data alone
	n, err = seed(ctx, c, "demo12345")
	require.NoError(t, err)
	assert.Zero(t, n)

	users, err := c.Directory.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)
}

func TestSeed_AccountsCanLogIn(t *testing.T) {
	ctx := context.Background()
	c := container.New(&config.Config{BcryptCost: bcrypt.MinCost}, nil, container.MemoryRepositories(), container.Options{})
	_, err := seed(ctx, c, "demo12345")
	require.NoError(t, err)

	res, err := c.Sessions.Login(ctx, "ana.garcia@unrc.edu.mx", "demo12345")
	require.NoError(t, err)
	assert.Equal(t, "Ana García", res.User.Name)
}
