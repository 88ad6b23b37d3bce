package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	require.Equal(t, []int{4, 3, 3}, Split(10, 3))
	require.Equal(t, []int{1, 1, 0, 0}, Split(2, 4))
	require.Equal(t, []int{5}, Split(5, 1))

	total := 0
	for _, share := range Split(10_001, 8) {
		total += share
	}
	require.Equal(t, 10_001, total, "Shares should add up to the total")
}
