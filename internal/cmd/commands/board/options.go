package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

// decodeOptions turns key=value pairs such as "free=true" into board options.
// Known boolean options must parse as booleans. Other keys are kept as a
// boolean when the value reads as one and as a string otherwise.
func decodeOptions(kv base.KeyValueFlag) (lukaz.BoardOptions, error) {
	opts := make(lukaz.BoardOptions, len(kv))
	for k, v := range kv {
		key := strings.ToLower(k)
		if lukaz.IsBoolOption(key) {
			var b bool
			if err := mapstructure.WeakDecode(v, &b); err != nil {
				return nil, fmt.Errorf("invalid -option %s: %w", key, err)
			}
			opts[key] = b
			continue
		}
		if b, err := strconv.ParseBool(v); err == nil {
			opts[key] = b
			continue
		}
		opts[key] = v
	}
	return opts, nil
}

// mergeOptions returns current with every option in changes applied.
func mergeOptions(current, changes lukaz.BoardOptions) lukaz.BoardOptions {
	merged := current.Clone()
	for k, v := range changes {
		merged[k] = v
	}
	return merged
}

var roleNames = map[string]int{
	"viewer": lukaz.RoleViewer,
	"editor": lukaz.RoleEditor,
	"owner":  lukaz.RoleOwner,
}

// parseRoles turns email=level pairs into the roles map. Levels are either a
// name (viewer, editor, owner) or the numeric role.
func parseRoles(kv base.KeyValueFlag) (map[string]int, error) {
	if len(kv) == 0 {
		return nil, nil
	}

	roles := make(map[string]int, len(kv))
	for email, level := range kv {
		if n, ok := roleNames[strings.ToLower(level)]; ok {
			roles[email] = n
			continue
		}
		n, err := strconv.Atoi(level)
		if err != nil {
			return nil, fmt.Errorf("invalid role %q for %s", level, email)
		}
		roles[email] = n
	}
	return roles, nil
}
