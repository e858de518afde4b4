package badger

import (
	"fmt"

	"github.com/docsift/docsift/core"
)

// Key prefixes for different data types
const (
	blockPrefix = "blkseq"
)

// makeBlockKey generates a key for a cached block sequence by content ID.
func makeBlockKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", blockPrefix, id))
}
