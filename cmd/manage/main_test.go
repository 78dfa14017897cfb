package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/internlink/internlink-api/internal/models"
	"github.com/internlink/internlink-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAdminAndList(t *testing.T) {
	db := testutil.NewDB(t)
	var out bytes.Buffer

	require.NoError(t, run(db, "create-admin", []string{"-email", "Root@Example.com", "-password", "password123"}, &out))
	assert.Contains(t, out.String(), "root@example.com")

	out.Reset()
	require.NoError(t, run(db, "list-users", nil, &out))
	assert.Contains(t, out.String(), "root@example.com")
	assert.Contains(t, out.String(), "ADMIN")
}

func TestMakeAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	user := models.User{Email: "intern@example.com", Password: "x", Role: models.RoleIntern}
	require.NoError(t, db.Create(&user).Error)

	var out bytes.Buffer
	require.NoError(t, run(db, "make-admin", []string{"-id", fmt.Sprint(user.ID)}, &out))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, models.RoleAdmin, stored.Role)

	assert.Error(t, run(db, "make-admin", []string{"-id", "99"}, &out))
}

func TestRunRejectsBadInput(t *testing.T) {
	db := testutil.NewDB(t)
	var out bytes.Buffer

	assert.Error(t, run(db, "create-admin", []string{"-email", "a@example.com", "-password", "short"}, &out))
	assert.Error(t, run(db, "make-admin", nil, &out))
	assert.Error(t, run(db, "drop-tables", nil, &out))
}
