package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/graphit/core"
)

// Key prefixes for different data types
const (
	sourceDataPrefix      = "srcrec"
	sourceDataTopicPrefix = "srcrectop"
	blueprintPrefix       = "blprec"
	blueprintTopicPrefix  = "blprectop"
	triplePrefix          = "trirec"
	tripleTopicPrefix     = "trirectop"
	tripleSourcePrefix    = "trirecsrc"
)

// makeSourceDataKey generates a key for a source document by ID.
func makeSourceDataKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", sourceDataPrefix, id))
}

// makeBlueprintKey generates a key for a blueprint by ID.
func makeBlueprintKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", blueprintPrefix, id))
}

// makeTripleKey generates a key for a triple by ID.
func makeTripleKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", triplePrefix, id))
}

// makeTopicKey generates a composite key for a topic index.
// Format: prefix:topicName:id
func makeTopicKey(prefix, topicName string, id core.ID) []byte {
	partial := makePartialTopicKey(prefix, topicName)
	buf := make([]byte, len(partial)+8)
	offset := copy(buf, partial)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialTopicKey generates a partial key for topic index scans.
// Format: prefix:topicName:
func makePartialTopicKey(prefix, topicName string) []byte {
	return []byte(prefix + ":" + topicName + ":")
}

// makeTripleSourceKey generates a composite key for the source index.
// Format: prefix:sourceDataID:tripleID
func makeTripleSourceKey(sourceDataID, tripleID core.ID) []byte {
	partial := makePartialTripleSourceKey(sourceDataID)
	buf := make([]byte, len(partial)+8)
	offset := copy(buf, partial)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(tripleID))
	return buf
}

// makePartialTripleSourceKey generates a partial key for source index scans.
// Format: prefix:sourceDataID
func makePartialTripleSourceKey(sourceDataID core.ID) []byte {
	prefix := tripleSourcePrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, []byte(prefix))
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(sourceDataID))
	return buf
}
