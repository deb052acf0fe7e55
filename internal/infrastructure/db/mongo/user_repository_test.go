package mongo

import (
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gradefresh/quality-api/internal/core/domain"
)

func writeException(msg string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: msg},
		},
	}
}

func TestDuplicateKeyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{
			"email index",
			writeException(`E11000 duplicate key error collection: gradefresh.users index: email_unique dup key: { email: "a@example.com" }`),
			domain.ErrEmailTaken,
		},
		{
			"username index",
			writeException(`E11000 duplicate key error collection: gradefresh.users index: username_unique dup key: { username: "alice" }`),
			domain.ErrUsernameTaken,
		},
		{
			"unrecognized shape falls back to email",
			fmt.Errorf("duplicate key"),
			domain.ErrEmailTaken,
		},
	}

	for _, tc := range cases {
		if got := duplicateKeyError(tc.err); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
