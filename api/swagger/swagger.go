package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Student Management API",
        "description": "Backend for student enrollment and academic structure management",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Enrollments", "description": "Bulk spreadsheet enrollment and unenrollment"},
        {"name": "Students", "description": "Student listings and bulk data updates"},
        {"name": "Teachers", "description": "Teacher management"},
        {"name": "Courses", "description": "Course management"},
        {"name": "Groups", "description": "Course group management"},
        {"name": "Rooms", "description": "Room listings and roster exports"},
        {"name": "Templates", "description": "Downloadable spreadsheet templates"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unavailable"}
                }
            }
        },
        "/enrollment/students": {
            "post": {
                "tags": ["Enrollments"],
                "summary": "Enroll students in bulk from a spreadsheet",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {
                    "207": {"description": "Multi-Status", "schema": {"$ref": "#/definitions/BulkReport"}},
                    "400": {"description": "Unsupported or unreadable file", "schema": {"$ref": "#/definitions/DetailError"}}
                }
            }
        },
        "/enrollment/{enrollment_id}": {
            "delete": {
                "tags": ["Enrollments"],
                "summary": "Delete an enrollment",
                "parameters": [
                    {"name": "enrollment_id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/update/massive": {
            "put": {
                "tags": ["Students"],
                "summary": "Update students and guardians in bulk from a spreadsheet",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {
                    "207": {"description": "Multi-Status", "schema": {"$ref": "#/definitions/BulkReport"}},
                    "400": {"description": "Unsupported or unreadable file", "schema": {"$ref": "#/definitions/DetailError"}}
                }
            }
        },
        "/student/group/{group_id}": {
            "get": {
                "tags": ["Students"],
                "summary": "List students enrolled in any room of a group",
                "parameters": [
                    {"name": "group_id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/room/{room_id}": {
            "get": {
                "tags": ["Students"],
                "summary": "List students enrolled in a room",
                "parameters": [
                    {"name": "room_id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teacher": {
            "post": {
                "tags": ["Teachers"],
                "summary": "Create teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTeacherRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already in use", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/course": {
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/group/list": {
            "get": {
                "tags": ["Groups"],
                "summary": "List groups with their courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/group": {
            "post": {
                "tags": ["Groups"],
                "summary": "Create group",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateGroupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/group/{group_id}": {
            "delete": {
                "tags": ["Groups"],
                "summary": "Delete a group without rooms assigned",
                "parameters": [
                    {"name": "group_id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Group still has rooms", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/room/list": {
            "get": {
                "tags": ["Rooms"],
                "summary": "List rooms with their groups",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/room/{room_id}/roster": {
            "get": {
                "tags": ["Rooms"],
                "summary": "Download the student roster of a room",
                "produces": ["application/pdf", "text/csv"],
                "parameters": [
                    {"name": "room_id", "in": "path", "type": "integer", "required": true},
                    {"name": "format", "in": "query", "type": "string", "enum": ["pdf", "csv"], "default": "pdf"}
                ],
                "responses": {
                    "200": {"description": "Roster file"},
                    "404": {"description": "Room not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/template/list/templates": {
            "get": {
                "tags": ["Templates"],
                "summary": "List downloadable spreadsheet templates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/template/template/{template_id}": {
            "get": {
                "tags": ["Templates"],
                "summary": "Download a spreadsheet template",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"name": "template_id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Workbook file"},
                    "404": {"description": "Template not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateTeacherRequest": {
            "type": "object",
            "required": ["first_name", "last_name", "email"],
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "document_type_id": {"type": "integer"},
                "document_number": {"type": "integer"},
                "country_id": {"type": "integer"}
            }
        },
        "CreateCourseRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "CreateGroupRequest": {
            "type": "object",
            "required": ["name", "course_id"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "start_time": {"type": "string", "format": "date-time"},
                "end_time": {"type": "string", "format": "date-time"},
                "course_id": {"type": "integer"}
            }
        },
        "BulkReport": {
            "type": "object",
            "properties": {
                "Successful users": {"type": "array", "items": {"type": "object"}},
                "Failed users": {"type": "array", "items": {"type": "object"}}
            }
        },
        "DetailError": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
