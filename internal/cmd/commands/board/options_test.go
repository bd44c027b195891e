package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

func TestDecodeOptions(t *testing.T) {
	opts, err := decodeOptions(base.KeyValueFlag{
		"PUBLIC":    "true",
		"docs":      "0",
		"ask":       "yes",
		"translate": "false",
		"language":  "es",
	})
	require.NoError(t, err)
	assert.Equal(t, lukaz.BoardOptions{
		lukaz.OptionPublic: true,
		lukaz.OptionDocs:   false,
		"ask":              "yes",
		"translate":        false,
		"language":         "es",
	}, opts)

	opts, err = decodeOptions(nil)
	require.NoError(t, err)
	assert.Empty(t, opts)

	_, err = decodeOptions(base.KeyValueFlag{"free": "perhaps"})
	assert.Error(t, err)
}

func TestMergeOptions(t *testing.T) {
	current := lukaz.BoardOptions{
		lukaz.OptionPrompt: true,
		lukaz.OptionUpload: false,
		"ask":              true,
		"translate":        true,
	}

	merged := mergeOptions(current, lukaz.BoardOptions{lukaz.OptionUpload: true})
	assert.Equal(t, lukaz.BoardOptions{
		lukaz.OptionPrompt: true,
		lukaz.OptionUpload: true,
		"ask":              true,
		"translate":        true,
	}, merged)
	assert.Equal(t, false, current[lukaz.OptionUpload], "current is not modified")

	assert.Equal(t, lukaz.BoardOptions{"ask": false}, mergeOptions(nil, lukaz.BoardOptions{"ask": false}))
}

func TestParseRoles(t *testing.T) {
	roles, err := parseRoles(base.KeyValueFlag{
		"a@example.com": "Viewer",
		"b@example.com": "owner",
		"c@example.com": "4",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"a@example.com": lukaz.RoleViewer,
		"b@example.com": lukaz.RoleOwner,
		"c@example.com": lukaz.RoleEditor,
	}, roles)

	roles, err = parseRoles(nil)
	require.NoError(t, err)
	assert.Nil(t, roles)

	_, err = parseRoles(base.KeyValueFlag{"a@example.com": "admin"})
	assert.Error(t, err)
}
