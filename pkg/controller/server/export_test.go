package server

const (
	JobRefreshForTest    = jobRefresh
	JobBodyEditedForTest = jobBodyEdited
)

func GitHubEventToJobForTest(event any) *webhookJob {
	return githubEventToJob(event)
}

// LockPullForTest takes the per pull request lock and reports how many keys
// are held afterwards.
func LockPullForTest(keys ...string) (held int, unlock func()) {
	locks := newPullLocks()
	var unlocks []func()
	for _, key := range keys {
		unlocks = append(unlocks, locks.lock(key))
	}
	held = locks.size()
	return held, func() {
		for _, u := range unlocks {
			u()
		}
		if locks.size() != 0 {
			panic("pull locks leaked")
		}
	}
}
