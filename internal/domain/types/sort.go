package types

import (
	"sort"
	"strconv"

	"github.com/okian/warboard/internal/domain/model"
)

// sortCareers orders by value descending, then player id.
func sortCareers(cs []*model.Career) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].Value() != cs[j].Value() {
			return cs[i].Value() > cs[j].Value()
		}
		return cs[i].PlayerID() < cs[j].PlayerID()
	})
}

func yearRange(first, last int) string {
	return strconv.Itoa(first) + "-" + strconv.Itoa(last)
}
