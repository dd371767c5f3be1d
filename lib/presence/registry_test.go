package presence

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("учёт подключений", func(t *testing.T) {
		registry := NewRegistry()
		require.False(t, registry.IsOnline("user-1"))
		require.Empty(t, registry.Connections("user-1"))

		registry.Add("user-1", "conn-1")
		registry.Add("user-1", "conn-2")
		require.True(t, registry.IsOnline("user-1"))
		require.ElementsMatch(t, []string{"conn-1", "conn-2"}, registry.Connections("user-1"))

		// пользователь онлайн, пока жив хотя бы один коннект
		registry.Remove("user-1", "conn-1")
		require.True(t, registry.IsOnline("user-1"))

		registry.Remove("user-1", "conn-2")
		require.False(t, registry.IsOnline("user-1"))
		require.Empty(t, registry.Connections("user-1"))
	})

	t.Run("удаление неизвестного коннекта безопасно", func(t *testing.T) {
		registry := NewRegistry()
		registry.Remove("user-1", "conn-1")
		registry.Add("user-1", "conn-1")
		registry.Remove("user-1", "conn-2")
		require.True(t, registry.IsOnline("user-1"))
	})

	t.Run("конкурентный доступ", func(t *testing.T) {
		registry := NewRegistry()
		wg := sync.WaitGroup{}
		for g := 0; g < 10; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				userID := fmt.Sprintf("user-%d", g%3)
				for j := 0; j < 100; j++ {
					connID := fmt.Sprintf("conn-%d-%d", g, j)
					registry.Add(userID, connID)
					registry.IsOnline(userID)
					registry.Connections(userID)
					registry.Remove(userID, connID)
				}
			}(g)
		}
		wg.Wait()
		for g := 0; g < 3; g++ {
			require.False(t, registry.IsOnline(fmt.Sprintf("user-%d", g)))
		}
	})
}
