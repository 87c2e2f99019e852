package models

type Table string

const (
	TableGuilds      Table = "guilds"
	TableInvocations Table = "invocations"
)

type Mappable interface {
	Table() Table
	Map() map[string]any
}
