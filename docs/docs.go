// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/extract-tasks": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Extraction"],
                "summary": "Extract tasks from text",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/extractReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/extractResp"}},
                    "400": {"description": "Text content is required", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Failed to extract tasks", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "string", "description": "Filter by status (todo/in_progress/completed)", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/taskResp"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Create a task",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/createReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/taskResp"}},
                    "400": {"description": "Invalid task data", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/tasks/bulk": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Import extracted tasks",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/bulkReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/bulkResp"}},
                    "400": {"description": "Invalid task data", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/tasks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Get a task",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/taskResp"}},
                    "400": {"description": "Invalid task ID", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Task not found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Update a task",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/updateReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/taskResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Task not found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Invalid task ID", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Task not found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/task-stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Task statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/statsResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/ai-messages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["AI Messages"],
                "summary": "List AI messages",
                "parameters": [{"type": "integer", "description": "Maximum number of messages", "name": "limit", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/messageResp"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["AI Messages"],
                "summary": "Append an AI message",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/messageReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/messageResp"}},
                    "400": {"description": "Invalid message data", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Database unavailable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}}
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "error": {"type": "string"}}
        },
        "extractedTask": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "dueDate": {"type": "string", "example": "2024-01-12"},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "category": {"type": "string"}
            }
        },
        "extractReq": {
            "type": "object",
            "properties": {"text": {"type": "string"}, "referenceDate": {"type": "string", "example": "2024-01-10"}}
        },
        "extractResp": {
            "type": "object",
            "properties": {
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/extractedTask"}},
                "droppedCount": {"type": "integer"}
            }
        },
        "taskResp": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["todo", "in_progress", "completed"]},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "dueDate": {"type": "string"},
                "category": {"type": "string"},
                "createdAt": {"type": "string"},
                "isAiGenerated": {"type": "boolean"},
                "source": {"type": "string"}
            }
        },
        "createReq": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["todo", "in_progress", "completed"]},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "dueDate": {"type": "string", "example": "2024-01-12"},
                "category": {"type": "string"},
                "isAiGenerated": {"type": "boolean"},
                "source": {"type": "string"}
            }
        },
        "updateReq": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["todo", "in_progress", "completed"]},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "dueDate": {"type": "string"},
                "category": {"type": "string"}
            }
        },
        "bulkReq": {
            "type": "object",
            "required": ["tasks"],
            "properties": {
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/extractedTask"}},
                "source": {"type": "string"}
            }
        },
        "bulkResp": {
            "type": "object",
            "properties": {
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/taskResp"}},
                "calendarLinks": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "statsResp": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "todo": {"type": "integer"},
                "inProgress": {"type": "integer"},
                "completed": {"type": "integer"},
                "completionRate": {"type": "integer"}
            }
        },
        "messageReq": {
            "type": "object",
            "required": ["role", "content"],
            "properties": {"role": {"type": "string", "enum": ["user", "assistant", "system"]}, "content": {"type": "string"}}
        },
        "messageResp": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "role": {"type": "string"},
                "content": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Taskboard API",
	Description:      "Task board with AI task extraction from free-form text.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
