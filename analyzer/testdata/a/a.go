package a

import "test/memo"

type model struct {
	limit int
}

var limit = 10

func missingDep(m *model, query string) int {
	return memo.Memo(func() int {
		return len(query) + m.limit
	}, m.limit) // want `Missing dependency 'query' \(md:mis\)`
}

func exactMatch(m *model, query string) int {
	return memo.Memo(func() int {
		return len(query) + m.limit
	}, m.limit, query)
}

func unnecessaryDep(m *model, query string) int {
	return memo.Memo(func() int {
		return m.limit
	}, m.limit, query) // want `Unnecessary dependency 'query' \(md:unn\)`
}

func missingList(m *model, query string) int {
	return memo.Memo(func() int { // want `Call to 'memo\.Memo' is missing a dependency list for 'm\.limit' and 'query' \(md:lst\)`
		return len(query) + m.limit
	})
}

func effectList(query string) {
	memo.Effect(func() { // want `Call to 'memo\.Effect' is missing a dependency list for 'query' \(md:lst\)`
		println(query)
	})
}

func unstableDep(m *model) int {
	opts := []int{1, 2, 3}

	return memo.Memo(func() int {
		return len(opts) + m.limit
	}, m.limit, opts) // want `Unstable dependency 'opts' defeats memoization \(md:uns\)`
}

func stableResults() func() {
	counter := memo.Ref(0)
	count, setCount := memo.State(0)

	return memo.Callback(func() {
		*counter += count
		setCount(*counter)
	}, count)
}

func constDep() int {
	const factor = 3
	scale := 10

	return memo.Memo(func() int {
		return factor * scale
	}, scale)
}

func moduleScope(query string) int {
	return memo.Memo(func() int {
		return limit + len(query)
	}, query)
}

func tick() {}

func namedClosure() {
	memo.Effect(tick)
}
