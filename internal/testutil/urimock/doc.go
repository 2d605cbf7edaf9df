package urimock

//go:generate go tool mockgen -destination=mocks.go -package=urimock github.com/ghettovoice/gouri/uri PathConverter,Specialization
