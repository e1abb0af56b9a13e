package bridge_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/katas/bridge"
)

// BridgeSuite exercises both solving methods on the known instances.
type BridgeSuite struct {
	suite.Suite
}

var puzzles = []struct {
	times []int
	want  int
}{
	{[]int{1, 2, 5, 10}, 17},
	{[]int{1, 2, 3, 4, 5}, 16},
	{[]int{100}, 100},
	{[]int{1, 2, 3, 50, 99, 100}, 162},
	{[]int{1, 1}, 1},
	{[]int{1, 2}, 2},
	{[]int{1, 1, 1}, 3},
	{[]int{1, 1, 2}, 4},
	{[]int{1, 1, 1, 1}, 5},
	{[]int{1, 1, 1, 2}, 6},
	{[]int{1, 20, 21, 22}, 65},
}

// TestSearch checks Dijkstra over crossing states.
func (s *BridgeSuite) TestSearch() {
	for _, p := range puzzles {
		res, err := bridge.MinTime(p.times)
		require.NoError(s.T(), err)
		s.Equal(p.want, res.Total, "times %v", p.times)
		s.Nil(res.Schedule)
	}
}

// TestGreedy checks the closed-form escort recurrence.
func (s *BridgeSuite) TestGreedy() {
	for _, p := range puzzles {
		res, err := bridge.MinTime(p.times, bridge.WithMethod(bridge.Greedy))
		require.NoError(s.T(), err)
		s.Equal(p.want, res.Total, "times %v", p.times)
	}
}

// TestSchedule replays every returned schedule and checks its legality.
func (s *BridgeSuite) TestSchedule() {
	for _, p := range puzzles {
		res, err := bridge.MinTime(p.times, bridge.WithSchedule())
		require.NoError(s.T(), err)
		s.replay(p.times, res)
	}
}

// TestInputDoesNotChange verifies that Greedy sorts a copy.
func (s *BridgeSuite) TestInputDoesNotChange() {
	times := []int{10, 1, 5, 2}
	_, err := bridge.MinTime(times, bridge.WithMethod(bridge.Greedy))
	require.NoError(s.T(), err)
	s.Equal([]int{10, 1, 5, 2}, times)
}

// TestErrors verifies validation order and sentinels.
func (s *BridgeSuite) TestErrors() {
	_, err := bridge.MinTime(nil)
	s.ErrorIs(err, bridge.ErrEmptyInput)

	_, err = bridge.MinTime([]int{1, 0})
	s.ErrorIs(err, bridge.ErrBadTime)

	_, err = bridge.MinTime([]int{1, 2}, bridge.WithMethod(7))
	s.ErrorIs(err, bridge.ErrOptionViolation)

	_, err = bridge.MinTime([]int{1, 2}, bridge.WithMethod(bridge.Greedy), bridge.WithSchedule())
	s.ErrorIs(err, bridge.ErrScheduleNeedsSearch)

	many := make([]int, bridge.MaxSearchPeople+1)
	for i := range many {
		many[i] = i + 1
	}
	_, err = bridge.MinTime(many)
	s.ErrorIs(err, bridge.ErrTooManyPeople)

	res, err := bridge.MinTime(many, bridge.WithMethod(bridge.Greedy))
	s.NoError(err)
	s.Positive(res.Total)
}

// TestMethodsAgree compares both methods on random parties.
func (s *BridgeSuite) TestMethodsAgree() {
	rng := rand.New(rand.NewSource(146))
	for round := 0; round < 150; round++ {
		times := make([]int, 1+rng.Intn(8))
		for i := range times {
			times[i] = 1 + rng.Intn(100)
		}
		exact, err := bridge.MinTime(times, bridge.WithSchedule())
		require.NoError(s.T(), err)
		fast, err := bridge.MinTime(times, bridge.WithMethod(bridge.Greedy))
		require.NoError(s.T(), err)
		s.Equal(exact.Total, fast.Total, "times %v", times)
		s.replay(times, exact)
	}
}

// replay walks the schedule: trips alternate direction, movers stand on the
// flashlight's side, at most two travel, and the costs add up to the total.
func (s *BridgeSuite) replay(times []int, res *bridge.Result) {
	across := make([]bool, len(times))
	lightAcross := false
	sum := 0
	for k, m := range res.Schedule {
		s.Equal(!lightAcross, m.Forward, "move %d direction", k)
		s.NotEmpty(m.People)
		s.LessOrEqual(len(m.People), 2)
		slowest := 0
		for _, i := range m.People {
			s.Equal(lightAcross, across[i], "person %d is not with the flashlight", i)
			across[i] = !across[i]
			slowest = max(slowest, times[i])
		}
		s.Equal(slowest, m.Cost)
		lightAcross = !lightAcross
		sum += m.Cost
	}
	for i, a := range across {
		s.True(a, "person %d never crossed in %v", i, times)
	}
	s.Equal(res.Total, sum)
}

// Entry point for running the suite.
func TestBridgeSuite(t *testing.T) {
	suite.Run(t, new(BridgeSuite))
}
