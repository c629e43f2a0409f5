package bson

import "strconv"

// precomputed array keys, like libbson does for the common case
var indexKeys = func() (keys [1000]string) {
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return
}()

// IndexKey returns the canonical decimal label of the i-th array element.
func IndexKey(i uint32) string {
	if i < uint32(len(indexKeys)) {
		return indexKeys[i]
	}
	return strconv.FormatUint(uint64(i), 10)
}
