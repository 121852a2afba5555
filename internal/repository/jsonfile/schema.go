package jsonfile

// taskCollectionSchema describes the persisted task mapping. Loaded files
// are validated against it before unmarshalling, so structural corruption
// is reported precisely instead of surfacing as zero-valued fields.
const taskCollectionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Task collection",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "required": ["id", "title", "priority", "status", "tags", "created_at", "updated_at"],
    "properties": {
      "id": { "type": "string", "minLength": 1 },
      "title": { "type": "string", "minLength": 1 },
      "description": { "type": "string" },
      "priority": { "type": "integer", "minimum": 1, "maximum": 4 },
      "status": { "enum": ["todo", "in_progress", "review", "done"] },
      "tags": { "type": "array", "items": { "type": "string" } },
      "due_date": { "type": ["string", "null"], "format": "date-time" },
      "created_at": { "type": "string", "format": "date-time" },
      "updated_at": { "type": "string", "format": "date-time" },
      "completed_at": { "type": ["string", "null"], "format": "date-time" }
    }
  }
}`
