package model

// Account is one named user of the locker: credentials plus the media they
// own and the running total of bytes those items consume.
//
// The password is stored and compared as plaintext. The locker is a personal
// tool behind its own front door, not a security boundary.
type Account struct {
	Password    string      `json:"password"`
	Media       []MediaItem `json:"media"`
	StorageUsed int64       `json:"storageUsed"`
}

// MediaBytes sums the sizes of every stored item. After any completed
// mutation it must equal StorageUsed, which is maintained incrementally.
func (a *Account) MediaBytes() int64 {
	var total int64
	for i := range a.Media {
		total += a.Media[i].Size
	}
	return total
}
