// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avltrace/avl"
)

func keysInOrder(node *avl.Node[int], out []int) []int {
	if node == nil {
		return out
	}
	out = keysInOrder(node.Left(), out)
	out = append(out, node.Value())
	return keysInOrder(node.Right(), out)
}

type snapshot struct {
	value, height int
}

func shapeOf(node *avl.Node[int]) []snapshot {
	if node == nil {
		return nil
	}
	out := []snapshot{{node.Value(), node.Height()}}
	out = append(out, shapeOf(node.Left())...)
	return append(out, shapeOf(node.Right())...)
}

// maxAVLHeight is the classic worst-case height bound for n nodes.
func maxAVLHeight(n int) int {
	return int(math.Floor(1.4405*math.Log2(float64(n)+2) - 0.3277))
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2025} {
		rng := rand.New(rand.NewSource(seed))
		tree := avl.New[int]()
		model := make(map[int]struct{})

		for i := 0; i < 3000; i++ {
			key := rng.Intn(400)
			if rng.Intn(3) == 0 {
				tree.Delete(key)
				delete(model, key)
			} else {
				tree.Insert(key)
				model[key] = struct{}{}
			}

			require.NoError(t, tree.Check(), "seed %d step %d", seed, i)
			require.Equal(t, len(model), tree.Len(), "seed %d step %d", seed, i)
			require.LessOrEqual(t, tree.Height(), maxAVLHeight(tree.Len()), "seed %d step %d", seed, i)
		}

		expected := make([]int, 0, len(model))
		for k := range model {
			expected = append(expected, k)
			assert.True(t, tree.Contains(k))
		}
		sort.Ints(expected)
		assert.Equal(t, expected, keysInOrder(tree.Root(), []int{}))
	}
}

func TestInsertIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	tree := avl.New[int]()
	for i := 0; i < 200; i++ {
		tree.Insert(rng.Intn(1000))
	}

	for _, key := range keysInOrder(tree.Root(), nil) {
		before := shapeOf(tree.Root())
		tr := tree.Insert(key)
		require.Equal(t, before, shapeOf(tree.Root()), "re-inserting %d", key)
		require.NotEmpty(t, tr.Path())
		assert.Equal(t, key, tr.Path()[len(tr.Path())-1], "duplicate search should stop at %d", key)
	}
}

func TestInsertThenDeleteRestoresKeys(t *testing.T) {
	tree := avl.New[int]()
	tree.Insert(5)
	tree.Delete(5)
	assert.True(t, tree.IsEmpty())
	assert.Nil(t, tree.Root())
	assert.Equal(t, 0, tree.Len())

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		tree.Insert(rng.Intn(10000))
	}
	before := keysInOrder(tree.Root(), nil)
	for i := 0; i < 100; i++ {
		key := 10000 + rng.Intn(10000)
		tree.Insert(key)
		tree.Delete(key)
		require.Equal(t, before, keysInOrder(tree.Root(), nil))
		require.NoError(t, tree.Check())
	}
}

func TestSequentialInsertHeight(t *testing.T) {
	for n := 1; n <= 256; n++ {
		ascending := avl.New[int]()
		descending := avl.New[int]()
		for i := 1; i <= n; i++ {
			ascending.Insert(i)
			descending.Insert(n + 1 - i)
		}
		expected := int(math.Floor(math.Log2(float64(n)))) + 1
		require.Equal(t, expected, ascending.Height(), "ascending n=%d", n)
		require.Equal(t, expected, descending.Height(), "descending n=%d", n)
	}
}

func TestDeleteEveryKeyInRandomOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tree := avl.New[int]()
	keys := rng.Perm(500)
	for _, k := range keys {
		tree.Insert(k)
	}
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	for i, k := range keys {
		tr := tree.Delete(k)
		require.Equal(t, avl.OpDelete, tr.Op)
		require.Equal(t, k, tr.Value)
		require.False(t, tree.Contains(k))
		require.NoError(t, tree.Check(), "after deleting %d", k)
		require.Equal(t, len(keys)-i-1, tree.Len())
	}
	assert.True(t, tree.IsEmpty())
}

func TestPromotionMarker(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	tree := avl.New[int]()
	for i := 0; i < 300; i++ {
		tree.Insert(1 + rng.Intn(5000))
	}

	for _, k := range keysInOrder(tree.Root(), nil) {
		var twoChildren bool
		for node := tree.Root(); node != nil; {
			if k < node.Value() {
				node = node.Left()
			} else if k > node.Value() {
				node = node.Right()
			} else {
				twoChildren = node.Left() != nil && node.Right() != nil
				break
			}
		}

		tr := tree.Delete(k)
		promoted, ok := tr.Promoted()
		require.Equal(t, twoChildren, ok, "key %d", k)

		negatives := 0
		for _, v := range avl.SignedTrace(tr) {
			if v < 0 {
				negatives++
				assert.Equal(t, -promoted, v)
			}
		}
		if ok {
			assert.Equal(t, 1, negatives)
			assert.Greater(t, promoted, k)
		} else {
			assert.Zero(t, negatives)
		}
		tree.Insert(k)
	}
}

func TestStringKeys(t *testing.T) {
	tree := avl.New[string]()
	for _, w := range []string{"kiwi", "apple", "mango", "banana", "cherry", "apple"} {
		tree.Insert(w)
	}
	require.NoError(t, tree.Check())
	assert.Equal(t, 5, tree.Len())
	assert.Equal(t, "apple", avl.MinValue(tree.Root()))

	tr := tree.Delete("kiwi")
	assert.Contains(t, tr.Path(), "kiwi")
	assert.False(t, tree.Contains("kiwi"))
}
