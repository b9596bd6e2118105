// Package docs registers the OpenAPI description served under /swagger. Keep it in step with the
// handler annotations when routes change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/analytics/dashboard": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Aggregates mailbox activity, AI reply usage, document statistics, productivity and collaboration metrics for the selected period",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analytics"
                ],
                "summary": "Get productivity dashboard",
                "parameters": [
                    {
                        "type": "string",
                        "default": "week",
                        "description": "Time period: week, month, year",
                        "name": "period",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Accepted for compatibility, ignored",
                        "name": "startDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Accepted for compatibility, ignored",
                        "name": "endDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.DashboardResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.DashboardErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.DashboardErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/models.DashboardErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Service health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "models.Collaborator": {
            "type": "object",
            "properties": {
                "hours": {"type": "integer"},
                "name": {"type": "string"},
                "projects": {"type": "integer"}
            }
        },
        "models.CollaborationSnapshot": {
            "type": "object",
            "properties": {
                "activeProjects": {"type": "integer"},
                "collaborationHours": {"type": "integer"},
                "communicationChannels": {"type": "object", "additionalProperties": {"type": "integer"}},
                "projectStatus": {"type": "object", "additionalProperties": {"type": "string"}},
                "sharedDocuments": {"type": "integer"},
                "teamMembers": {"type": "integer"},
                "topCollaborators": {"type": "array", "items": {"$ref": "#/definitions/models.Collaborator"}}
            }
        },
        "models.DashboardErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "success": {"type": "boolean"},
                "timestamp": {"type": "string"}
            }
        },
        "models.DashboardResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/models.DashboardSnapshot"},
                "success": {"type": "boolean"}
            }
        },
        "models.DashboardSnapshot": {
            "type": "object",
            "properties": {
                "aiUsage": {"$ref": "#/definitions/models.GenerationUsageSnapshot"},
                "collaboration": {"$ref": "#/definitions/models.CollaborationSnapshot"},
                "documentStats": {"$ref": "#/definitions/models.DocumentUsageSnapshot"},
                "emailStats": {"$ref": "#/definitions/models.MailActivitySnapshot"},
                "generatedAt": {"type": "string"},
                "period": {"type": "string"},
                "productivity": {"$ref": "#/definitions/models.ProductivitySnapshot"}
            }
        },
        "models.DayActivity": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "date": {"type": "string"},
                "dayName": {"type": "string"}
            }
        },
        "models.DayCount": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "day": {"type": "string"}
            }
        },
        "models.DocumentUsageSnapshot": {
            "type": "object",
            "properties": {
                "aiGeneratedDocuments": {"type": "integer"},
                "averageDocumentLength": {"type": "integer"},
                "documentsByCategory": {"type": "object", "additionalProperties": {"type": "integer"}},
                "documentsByType": {"type": "object", "additionalProperties": {"type": "integer"}},
                "documentsThisPeriod": {"type": "integer"},
                "documentsTrend": {"type": "array", "items": {"$ref": "#/definitions/models.DayCount"}},
                "error": {"type": "string"},
                "mostActiveDay": {"type": "string"},
                "totalDocuments": {"type": "integer"}
            }
        },
        "models.GenerationUsageSnapshot": {
            "type": "object",
            "properties": {
                "aiOnlyGeneration": {"type": "integer"},
                "averageGenerationTime": {"type": "number"},
                "error": {"type": "string"},
                "repliesByTone": {"type": "object", "additionalProperties": {"type": "integer"}},
                "repliesByType": {"type": "object", "additionalProperties": {"type": "integer"}},
                "successRate": {"type": "number"},
                "templatesUsed": {"type": "integer"},
                "totalGenerated": {"type": "integer"}
            }
        },
        "models.HourScore": {
            "type": "object",
            "properties": {
                "hour": {"type": "integer"},
                "score": {"type": "integer"}
            }
        },
        "models.MailActivitySnapshot": {
            "type": "object",
            "properties": {
                "activityByDay": {"type": "array", "items": {"$ref": "#/definitions/models.DayActivity"}},
                "averageResponseTime": {"type": "number"},
                "categories": {"type": "object", "additionalProperties": {"type": "integer"}},
                "error": {"type": "string"},
                "importantEmails": {"type": "integer"},
                "starredEmails": {"type": "integer"},
                "topSenders": {"type": "array", "items": {"$ref": "#/definitions/models.SenderCount"}},
                "totalEmails": {"type": "integer"},
                "unreadEmails": {"type": "integer"}
            }
        },
        "models.ProductivitySnapshot": {
            "type": "object",
            "properties": {
                "aiTimeSaved": {"type": "number"},
                "documentsPerWeek": {"type": "number"},
                "emailsPerHour": {"type": "number"},
                "productivityScore": {"type": "integer"},
                "topProductiveHours": {"type": "array", "items": {"$ref": "#/definitions/models.HourScore"}},
                "totalWorkHours": {"type": "number"},
                "weeklyGoals": {"type": "object", "additionalProperties": {"type": "integer"}},
                "workloadDistribution": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "models.SenderCount": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "sender": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "University Dashboard API",
	Description:      "Productivity analytics backend for the university dashboard",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
