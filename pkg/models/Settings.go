package models

type Settings struct {
	ID                    int
	PageSize              int
	ThumbnailSize         int
	LookupRefreshSchedule string
}
