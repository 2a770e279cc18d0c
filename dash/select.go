package dash

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrIndex = errors.New("invalid index")

type Indexer interface {
	columns() []int
}

// Selector extracts the value of a data point from a CSV row.
type Selector interface {
	Select([]string) (float64, error)
	Indexer
}

type summer struct {
	index []int
}

// SelectSum adds the values of every column in list.
func SelectSum(list []int) Selector {
	return summer{
		index: list,
	}
}

func (s summer) columns() []int {
	return s.index
}

func (s summer) Select(row []string) (float64, error) {
	var sum float64
	for _, i := range s.index {
		f, err := parseColumn(row, i)
		if err != nil {
			return 0, err
		}
		sum += f
	}
	return sum, nil
}

type single struct {
	index int
}

func SelectSingle(i int) Selector {
	return single{
		index: i,
	}
}

func (s single) columns() []int {
	return []int{s.index}
}

func (s single) Select(row []string) (float64, error) {
	return parseColumn(row, s.index)
}

func parseColumn(row []string, i int) (float64, error) {
	if i < 0 || i >= len(row) {
		return 0, fmt.Errorf("column %d: %w", i, ErrIndex)
	}
	str := strings.TrimSpace(row[i])
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("column %d: %q is not a number", i, str)
	}
	return f, nil
}

func ExpandRange(fst, lst int) []int {
	var list []int
	for i := fst; i <= lst; i++ {
		list = append(list, i)
	}
	return list
}

// ParseColumns parses a list of columns given as "1", "1,3" or "1-3".
func ParseColumns(str string) ([]int, error) {
	var list []int
	for _, part := range strings.Split(str, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fst, lst, ok := strings.Cut(part, "-")
		beg, err := strconv.Atoi(strings.TrimSpace(fst))
		if err != nil || beg < 0 {
			return nil, fmt.Errorf("%s: %w", part, ErrIndex)
		}
		if !ok {
			list = append(list, beg)
			continue
		}
		end, err := strconv.Atoi(strings.TrimSpace(lst))
		if err != nil || end < beg {
			return nil, fmt.Errorf("%s: %w", part, ErrIndex)
		}
		list = append(list, ExpandRange(beg, end)...)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no column given: %w", ErrIndex)
	}
	return list, nil
}
