package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorConstructors(t *testing.T) {
	empty := NewVector[int]()
	require.Equal(t, true, empty.Empty())
	require.Equal(t, 1, empty.Capacity())

	v := NewVectorOfSize(100, 9)
	require.Equal(t, 100, v.Size())
	require.Equal(t, 200, v.Capacity())
	for i := 0; i < v.Size(); i++ {
		x, err := v.At(i)
		require.Nil(t, err)
		require.Equal(t, 9, x)
	}

	nums := []int{1, 5, 3, 2, 6}
	v = NewVector(nums...)
	require.Equal(t, nums, v.Entries())
	nums[0] = 100
	x, _ := v.At(0)
	require.Equal(t, 1, x)
}

func TestVectorGrowShrink(t *testing.T) {
	v := NewVector(0, 1)
	for i := 2; i < 4; i++ {
		v.PushBack(i)
	}
	require.Equal(t, 4, v.Size())
	require.Equal(t, 8, v.Capacity())
	require.Equal(t, []int{0, 1, 2, 3}, v.Entries())
	for i := 0; i < 2; i++ {
		_, err := v.Pop()
		require.Nil(t, err)
	}
	require.Equal(t, 2, v.Size())
	require.Equal(t, 4, v.Capacity())
	require.Equal(t, []int{0, 1}, v.Entries())

	v = NewVector(0, 1, 2, 3, 4)
	for i := 5; i < 10; i++ {
		v.PushBack(i)
	}
	require.Equal(t, 10, v.Size())
	require.Equal(t, 20, v.Capacity())
	for i := 0; i < 5; i++ {
		x, err := v.Pop()
		require.Nil(t, err)
		require.Equal(t, 9-i, x)
	}
	require.Equal(t, 5, v.Size())
	require.Equal(t, 10, v.Capacity())
	require.Equal(t, []int{0, 1, 2, 3, 4}, v.Entries())
}

func TestVectorInsert(t *testing.T) {
	v := NewVector(0, 2, 3, 4, 5)
	require.Nil(t, v.Insert(1, 1))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, v.Entries())
	require.Nil(t, v.Insert(6, 6))
	require.Nil(t, v.Insert(0, -1))
	require.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5, 6}, v.Entries())
	require.ErrorIs(t, v.Insert(9, 9), ErrIndexOutOfRange)
	require.ErrorIs(t, v.Insert(-1, 9), ErrIndexOutOfRange)
}

func TestVectorRemove(t *testing.T) {
	v := NewVector(0, 1, 2, 2, 3, 4, 5)
	x, err := v.RemoveAt(2)
	require.Nil(t, err)
	require.Equal(t, 2, x)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, v.Entries())

	for i := 0; i < 5; i++ {
		require.Nil(t, v.Insert(1, 2))
	}
	require.Equal(t, 6, v.RemoveFunc(func(x int) bool { return x == 2 }))
	require.Nil(t, v.Insert(2, 2))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, v.Entries())

	_, err = v.RemoveAt(6)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestVectorAccessErrors(t *testing.T) {
	v := NewVector[string]()
	_, err := v.Pop()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = v.At(0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.ErrorIs(t, v.Set(0, "a"), ErrIndexOutOfRange)
	v.PushBack("a")
	require.Nil(t, v.Set(0, "b"))
	x, err := v.At(0)
	require.Nil(t, err)
	require.Equal(t, "b", x)
}

func TestVectorFind(t *testing.T) {
	v := NewVector[int]()
	for i := 0; i < 5000; i++ {
		v.PushBack(i)
	}
	for i := 0; i < 5000; i++ {
		require.Equal(t, i, v.Find(func(x int) bool { return x == i }))
	}
	require.Equal(t, -1, v.Find(func(x int) bool { return x < 0 }))
}

func TestVectorDrainKeepsCapacityPositive(t *testing.T) {
	v := NewVector[int]()
	for i := 0; i < 64; i++ {
		v.PushBack(i)
	}
	for !v.Empty() {
		_, err := v.Pop()
		require.Nil(t, err)
		require.Greater(t, v.Capacity(), v.Size())
	}
	require.GreaterOrEqual(t, v.Capacity(), 1)
	v.PushBack(1)
	require.Equal(t, []int{1}, v.Entries())
}
