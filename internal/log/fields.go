package log

// Field names for structured logging
const (
	FieldComponent     = "component"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldItemID        = "item_id"
	FieldParticipantID = "participant_id"
	FieldItems         = "items"
	FieldParticipants  = "participants"
	FieldTotal         = "total"
	FieldTaxApplied    = "tax_applied"
	FieldCountry       = "country"
	FieldImportToken   = "import_token"
	FieldSource        = "source"
	FieldBackend       = "backend"
	FieldPath          = "path"
)

const (
	ComponentApp      = "app"
	ComponentSession  = "session"
	ComponentStorage  = "storage"
	ComponentTransfer = "transfer"
	ComponentAMQP     = "amqp"
	ComponentConfig   = "config"
)

const (
	OpAddItem           = "add_item"
	OpUpdateItem        = "update_item"
	OpRemoveItem        = "remove_item"
	OpAssign            = "assign"
	OpAddParticipant    = "add_participant"
	OpRenameParticipant = "rename_participant"
	OpRemoveParticipant = "remove_participant"
	OpSetTax            = "set_tax"
	OpSetCountry        = "set_country"
	OpReset             = "reset"
	OpImport            = "import"
	OpExport            = "export"
)
