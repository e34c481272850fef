package repository

import (
	"errors"
	"fmt"
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateErr(t *testing.T) {
	dup := &gomysql.MySQLError{Number: 1062, Message: "Duplicate entry 'guest@example.com' for key 'email'"}
	assert.True(t, isDuplicateErr(dup))
	assert.True(t, isDuplicateErr(fmt.Errorf("create: %w", dup)))
	assert.True(t, isDuplicateErr(gorm.ErrDuplicatedKey))

	assert.False(t, isDuplicateErr(&gomysql.MySQLError{Number: 1045, Message: "Access denied"}))
	assert.False(t, isDuplicateErr(errors.New("connection refused")))
	assert.False(t, isDuplicateErr(gorm.ErrRecordNotFound))
}
