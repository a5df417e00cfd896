package nofix

import "test/memo"

type model struct {
	limit int
}

func conflicting(m *model, query string, page int) int {
	return memo.Memo(func() int {
		return m.limit + len(query)
	}, m.limit, page) // want `Missing dependency 'query' \(md:mis\)` `Unnecessary dependency 'page' \(md:unn\)`
}

func overSpecific(m *model) int {
	return memo.Memo(func() int {
		return sum(m)
	}, m.limit) // want `Missing dependency 'm' \(md:mis\)` `Unnecessary dependency 'm\.limit' \(md:unn\)`
}

func sum(m *model) int { return m.limit }

func computedKey(counts map[string]int, key string) int {
	return memo.Memo(func() int {
		return counts[key]
	}, counts) // want `Missing dependency 'key' \(md:mis\)`
}

func indexPath(rows [][]int) int {
	return memo.Memo(func() int {
		return rows[0][1]
	}, rows[0])
}

func unstableFunc(query string) func() func() string {
	format := func() string { return query }

	return memo.Callback(func() func() string {
		return format
	}, format) // want `Unstable dependency 'format' defeats memoization \(md:uns\)`
}

func spread(query string, deps []any) string {
	return memo.Memo(func() string {
		return query
	}, deps...)
}

func sliceList(query string, deps []any) string {
	return memo.Memo(func() string {
		return query
	}, deps)
}

func ignored(query string) string {
	return memo.Memo(func() string { //nolint:memodeps
		return query
	})
}

func dynamic(f func() int) int {
	return memo.Memo(f)
}
