// Package docs holds the OpenAPI description served at /swagger when
// SWAGGER_ENABLED is set. It mirrors the godoc annotations on the handlers;
// regenerate with swag init after changing them.
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
		"/auth/signup": {
			"post": {
				"operationId": "signup",
				"summary": "Create an account",
				"tags": [
					"Account"
				],
				"description": "Registers the email and returns a signed-in session. The administrator address is reserved.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Credentials",
						"schema": {
							"$ref": "#/definitions/handlers.CredentialsRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.Session"
						}
					},
					"400": {
						"description": "Missing credentials",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Email taken or reserved",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"operationId": "login",
				"summary": "Sign in",
				"tags": [
					"Account"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Credentials",
						"schema": {
							"$ref": "#/definitions/handlers.CredentialsRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.Session"
						}
					},
					"400": {
						"description": "Missing credentials",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Invalid credentials",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/logout": {
			"post": {
				"operationId": "logout",
				"summary": "Sign out",
				"tags": [
					"Account"
				],
				"description": "Tokens are stateless; clients discard theirs. Always 204.",
				"responses": {
					"204": {
						"description": "OK"
					}
				}
			}
		},
		"/me": {
			"get": {
				"operationId": "me",
				"summary": "Current user",
				"tags": [
					"Account"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.User"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/admin/users": {
			"get": {
				"operationId": "listUsers",
				"summary": "Registered users, sorted by email",
				"tags": [
					"Admin"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.User"
							}
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/admin/users/{email}": {
			"delete": {
				"operationId": "deleteUser",
				"summary": "Delete a user account",
				"tags": [
					"Admin"
				],
				"description": "The caller's own account and the administrator account are protected.",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "email",
						"in": "path",
						"required": true,
						"description": "User email",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"403": {
						"description": "Protected account",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/admin/chat-sessions": {
			"get": {
				"operationId": "listChatSessions",
				"summary": "Logged assistant conversations, newest first",
				"tags": [
					"Admin"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Items per page",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.Page[domain.ChatSession]"
						}
					}
				}
			}
		},
		"/dashboard": {
			"get": {
				"operationId": "dashboard",
				"summary": "Progress summary for the current user",
				"tags": [
					"Dashboard"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.Dashboard"
						}
					}
				}
			}
		},
		"/assessment/questions": {
			"get": {
				"operationId": "questionnaire",
				"summary": "DASS-21 questionnaire in the request locale",
				"tags": [
					"Assessment"
				],
				"description": "Question scales always come from the scoring table, so a translation cannot change how answers are scored.",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "lang",
						"in": "query",
						"required": false,
						"description": "Locale override",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.QuestionnaireResponse"
						}
					}
				}
			}
		},
		"/assessment/results": {
			"post": {
				"operationId": "submitAssessment",
				"summary": "Score and store a DASS-21 submission",
				"tags": [
					"Assessment"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "21 answers",
						"schema": {
							"$ref": "#/definitions/handlers.SubmitAssessmentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.Outcome"
						}
					},
					"400": {
						"description": "Incomplete or invalid answers",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"get": {
				"operationId": "assessmentHistory",
				"summary": "Stored results, newest first",
				"tags": [
					"Assessment"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/services.Outcome"
							}
						}
					}
				}
			}
		},
		"/resources/videos": {
			"get": {
				"operationId": "listVideos",
				"summary": "Resource videos, newest first",
				"tags": [
					"Catalog"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.ResourceVideo"
							}
						}
					}
				}
			},
			"post": {
				"operationId": "addVideo",
				"summary": "Add a resource video",
				"tags": [
					"Catalog"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Video",
						"schema": {
							"$ref": "#/definitions/handlers.VideoRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.ResourceVideo"
						}
					},
					"400": {
						"description": "Missing title or unrecognized link",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/resources/videos/{id}": {
			"delete": {
				"operationId": "deleteVideo",
				"summary": "Delete a resource video",
				"tags": [
					"Catalog"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Video record ID",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/resources/sounds": {
			"get": {
				"operationId": "listSounds",
				"summary": "Nature sounds, newest first",
				"tags": [
					"Catalog"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.NatureSound"
							}
						}
					}
				}
			},
			"post": {
				"operationId": "addSound",
				"summary": "Add a nature sound",
				"tags": [
					"Catalog"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Sound",
						"schema": {
							"$ref": "#/definitions/handlers.SoundRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.NatureSound"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/resources/sounds/{id}": {
			"delete": {
				"operationId": "deleteSound",
				"summary": "Delete a nature sound",
				"tags": [
					"Catalog"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Sound record ID",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "OK"
					}
				}
			}
		},
		"/admin/knowledge": {
			"get": {
				"operationId": "listKnowledge",
				"summary": "Knowledge documents given to the assistant",
				"tags": [
					"Catalog"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.KnowledgeDocument"
							}
						}
					}
				}
			},
			"post": {
				"operationId": "addKnowledge",
				"summary": "Add a knowledge document",
				"tags": [
					"Catalog"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Document",
						"schema": {
							"$ref": "#/definitions/handlers.KnowledgeRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.KnowledgeDocument"
						}
					}
				}
			}
		},
		"/admin/knowledge/import": {
			"post": {
				"operationId": "importKnowledge",
				"summary": "Import a Markdown file as a knowledge document",
				"tags": [
					"Catalog"
				],
				"description": "Tables are flattened to readable rows. The title defaults to the file name.",
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "file",
						"in": "formData",
						"required": true,
						"description": "Markdown file",
						"type": "file"
					},
					{
						"name": "title",
						"in": "formData",
						"required": false,
						"description": "Document title",
						"type": "string"
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.KnowledgeDocument"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/admin/knowledge/{id}": {
			"delete": {
				"operationId": "deleteKnowledge",
				"summary": "Delete a knowledge document",
				"tags": [
					"Catalog"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Document ID",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "OK"
					}
				}
			}
		},
		"/challenges/today": {
			"get": {
				"operationId": "todayChallenge",
				"summary": "Today's challenge",
				"tags": [
					"Challenges"
				],
				"description": "Returns the challenge assigned for the current UTC day, creating it on first access in the request locale.",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.DailyChallenge"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/challenges": {
			"get": {
				"operationId": "challengeHistory",
				"summary": "All assigned challenges, oldest first",
				"tags": [
					"Challenges"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.DailyChallenge"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/challenges/{id}/toggle": {
			"post": {
				"operationId": "toggleChallenge",
				"summary": "Flip a challenge's completion flag",
				"tags": [
					"Challenges"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Challenge ID",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.DailyChallenge"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/chat/conversations": {
			"post": {
				"operationId": "beginConversation",
				"summary": "Start an assistant conversation",
				"tags": [
					"Chat"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.ConversationResponse"
						}
					}
				}
			}
		},
		"/chat/conversations/{id}": {
			"get": {
				"operationId": "getConversation",
				"summary": "Conversation transcript",
				"tags": [
					"Chat"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Conversation ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.ConversationResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"operationId": "closeConversation",
				"summary": "End a conversation",
				"tags": [
					"Chat"
				],
				"description": "Signed-in conversations with a reply are logged for administrators.",
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Conversation ID",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/chat/conversations/{id}/messages": {
			"post": {
				"operationId": "sendChatMessage",
				"summary": "Send a prompt to the assistant",
				"tags": [
					"Chat"
				],
				"description": "With \"Accept: text/event-stream\" the reply streams as \"chunk\" events followed by \"done\" (or \"error\" then \"done\"). Otherwise the completed reply is returned as JSON.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json",
					"text/event-stream"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Conversation ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Prompt",
						"schema": {
							"$ref": "#/definitions/handlers.ChatMessageRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.ChatReply"
						}
					},
					"400": {
						"description": "Empty or too long",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"502": {
						"description": "Assistant failed",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"503": {
						"description": "Assistant not configured",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/forum/posts": {
			"get": {
				"operationId": "listPosts",
				"summary": "List forum posts (newest first, paginated)",
				"tags": [
					"Forum"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Items per page",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.Page[handlers.PostSummary]"
						}
					}
				}
			},
			"post": {
				"operationId": "createPost",
				"summary": "Create a forum post",
				"tags": [
					"Forum"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Post",
						"schema": {
							"$ref": "#/definitions/handlers.CreatePostRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.ForumPost"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/forum/posts/{id}": {
			"get": {
				"operationId": "getPost",
				"summary": "A post with its comments",
				"tags": [
					"Forum"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Post ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.ForumPost"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"operationId": "deletePost",
				"summary": "Delete a post and its comments",
				"tags": [
					"Forum"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Post ID",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/forum/posts/{id}/comments": {
			"post": {
				"operationId": "addComment",
				"summary": "Comment on a post",
				"tags": [
					"Forum"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Post ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Comment",
						"schema": {
							"$ref": "#/definitions/handlers.CommentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.ForumComment"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/forum/posts/{id}/comments/{commentId}": {
			"delete": {
				"operationId": "deleteComment",
				"summary": "Delete a comment",
				"tags": [
					"Forum"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Post ID",
						"type": "string"
					},
					{
						"name": "commentId",
						"in": "path",
						"required": true,
						"description": "Comment ID",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/i18n/locales": {
			"get": {
				"operationId": "listLocales",
				"summary": "Loaded locales",
				"tags": [
					"I18n"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.LocalesResponse"
						}
					}
				}
			}
		},
		"/i18n/translations/{locale}/{key}": {
			"get": {
				"operationId": "translate",
				"summary": "Resolve a translation key",
				"tags": [
					"I18n"
				],
				"description": "Objects and lists are returned as stored. String values are interpolated with the query parameters (named placeholders). Missing keys fall back to English.",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "locale",
						"in": "path",
						"required": true,
						"description": "Locale",
						"type": "string"
					},
					{
						"name": "key",
						"in": "path",
						"required": true,
						"description": "Dotted key",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.TranslationResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/journal": {
			"get": {
				"operationId": "listJournal",
				"summary": "List journal entries (newest first, paginated)",
				"tags": [
					"Journal"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"description": "Items per page",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.Page[domain.JournalEntry]"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"operationId": "addJournalEntry",
				"summary": "Add a journal entry",
				"tags": [
					"Journal"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Entry",
						"schema": {
							"$ref": "#/definitions/handlers.JournalEntryRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.JournalEntry"
						}
					},
					"400": {
						"description": "Empty or too long",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"507": {
						"description": "Storage full",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
	"assessment.Severity": {
		"type": "object",
		"properties": {
			"depression": {
				"type": "string"
			},
			"anxiety": {
				"type": "string"
			},
			"stress": {
				"type": "string"
			}
		}
	},
	"domain.ChatMessage": {
		"type": "object",
		"properties": {
			"role": {
				"type": "string"
			},
			"text": {
				"type": "string"
			}
		}
	},
	"domain.ChatSession": {
		"type": "object",
		"properties": {
			"sessionId": {
				"type": "string"
			},
			"userEmail": {
				"type": "string"
			},
			"userId": {
				"type": "string"
			},
			"messages": {
				"type": "array",
				"items": {
					"$ref": "#/definitions/domain.ChatMessage"
				}
			}
		}
	},
	"domain.DailyChallenge": {
		"type": "object",
		"properties": {
			"id": {
				"type": "integer"
			},
			"text": {
				"type": "string"
			},
			"completed": {
				"type": "boolean"
			},
			"date": {
				"type": "string"
			}
		}
	},
	"domain.ForumComment": {
		"type": "object",
		"properties": {
			"id": {
				"type": "string"
			},
			"content": {
				"type": "string"
			},
			"authorEmail": {
				"type": "string"
			},
			"authorId": {
				"type": "string"
			},
			"createdAt": {
				"type": "string"
			}
		}
	},
	"domain.ForumPost": {
		"type": "object",
		"properties": {
			"id": {
				"type": "string"
			},
			"title": {
				"type": "string"
			},
			"content": {
				"type": "string"
			},
			"authorEmail": {
				"type": "string"
			},
			"authorId": {
				"type": "string"
			},
			"createdAt": {
				"type": "string"
			},
			"comments": {
				"type": "array",
				"items": {
					"$ref": "#/definitions/domain.ForumComment"
				}
			}
		}
	},
	"domain.JournalEntry": {
		"type": "object",
		"properties": {
			"id": {
				"type": "string"
			},
			"date": {
				"type": "string"
			},
			"content": {
				"type": "string"
			}
		}
	},
	"domain.KnowledgeDocument": {
		"type": "object",
		"properties": {
			"id": {
				"type": "string"
			},
			"title": {
				"type": "string"
			},
			"content": {
				"type": "string"
			}
		}
	},
	"domain.NatureSound": {
		"type": "object",
		"properties": {
			"id": {
				"type": "string"
			},
			"name": {
				"type": "string"
			},
			"videoId": {
				"type": "string"
			}
		}
	},
	"domain.ResourceVideo": {
		"type": "object",
		"properties": {
			"id": {
				"type": "string"
			},
			"title": {
				"type": "string"
			},
			"description": {
				"type": "string"
			},
			"videoId": {
				"type": "string"
			}
		}
	},
	"domain.Scores": {
		"type": "object",
		"properties": {
			"depression": {
				"type": "integer"
			},
			"anxiety": {
				"type": "integer"
			},
			"stress": {
				"type": "integer"
			}
		}
	},
	"domain.TestResult": {
		"type": "object",
		"properties": {
			"date": {
				"type": "string"
			},
			"scores": {
				"$ref": "#/definitions/domain.Scores"
			}
		}
	},
	"domain.User": {
		"type": "object",
		"properties": {
			"id": {
				"type": "string"
			},
			"email": {
				"type": "string"
			},
			"isAdmin": {
				"type": "boolean"
			}
		}
	},
	"handlers.ChatMessageRequest": {
		"type": "object",
		"properties": {
			"content": {
				"type": "string"
			}
		}
	},
	"handlers.ChatReply": {
		"type": "object",
		"properties": {
			"conversationId": {
				"type": "string"
			},
			"message": {
				"$ref": "#/definitions/domain.ChatMessage"
			}
		}
	},
	"handlers.CommentRequest": {
		"type": "object",
		"properties": {
			"content": {
				"type": "string"
			}
		}
	},
	"handlers.ConversationResponse": {
		"type": "object",
		"properties": {
			"id": {
				"type": "string"
			},
			"messages": {
				"type": "array",
				"items": {
					"$ref": "#/definitions/domain.ChatMessage"
				}
			}
		}
	},
	"handlers.CreatePostRequest": {
		"type": "object",
		"properties": {
			"title": {
				"type": "string"
			},
			"content": {
				"type": "string"
			}
		}
	},
	"handlers.CredentialsRequest": {
		"type": "object",
		"properties": {
			"email": {
				"type": "string"
			},
			"password": {
				"type": "string"
			}
		}
	},
	"handlers.ErrorResponse": {
		"type": "object",
		"properties": {
			"request_id": {
				"type": "string"
			},
			"code": {
				"type": "string"
			},
			"message": {
				"type": "string"
			}
		}
	},
	"handlers.JournalEntryRequest": {
		"type": "object",
		"properties": {
			"content": {
				"type": "string"
			}
		}
	},
	"handlers.KnowledgeRequest": {
		"type": "object",
		"properties": {
			"title": {
				"type": "string"
			},
			"content": {
				"type": "string"
			}
		}
	},
	"handlers.LocalesResponse": {
		"type": "object",
		"properties": {
			"locales": {
				"type": "array",
				"items": {
					"type": "string"
				}
			},
			"default": {
				"type": "string"
			},
			"current": {
				"type": "string"
			}
		}
	},
	"handlers.Page[domain.ChatSession]": {
		"type": "object",
		"properties": {
			"items": {
				"type": "array",
				"items": {
					"$ref": "#/definitions/domain.ChatSession"
				}
			},
			"pagination": {
				"$ref": "#/definitions/utils.Pagination"
			}
		}
	},
	"handlers.Page[domain.JournalEntry]": {
		"type": "object",
		"properties": {
			"items": {
				"type": "array",
				"items": {
					"$ref": "#/definitions/domain.JournalEntry"
				}
			},
			"pagination": {
				"$ref": "#/definitions/utils.Pagination"
			}
		}
	},
	"handlers.Page[handlers.PostSummary]": {
		"type": "object",
		"properties": {
			"items": {
				"type": "array",
				"items": {
					"$ref": "#/definitions/handlers.PostSummary"
				}
			},
			"pagination": {
				"$ref": "#/definitions/utils.Pagination"
			}
		}
	},
	"handlers.PostSummary": {
		"type": "object",
		"properties": {
			"id": {
				"type": "string"
			},
			"title": {
				"type": "string"
			},
			"content": {
				"type": "string"
			},
			"authorEmail": {
				"type": "string"
			},
			"createdAt": {
				"type": "string"
			},
			"commentCount": {
				"type": "integer"
			}
		}
	},
	"handlers.Question": {
		"type": "object",
		"properties": {
			"index": {
				"type": "integer"
			},
			"text": {
				"type": "string"
			},
			"scale": {
				"type": "string"
			}
		}
	},
	"handlers.QuestionnaireResponse": {
		"type": "object",
		"properties": {
			"locale": {
				"type": "string"
			},
			"title": {
				"type": "string"
			},
			"instruction": {
				"type": "string"
			},
			"options": {
				"type": "array",
				"items": {
					"type": "string"
				}
			},
			"questions": {
				"type": "array",
				"items": {
					"$ref": "#/definitions/handlers.Question"
				}
			}
		}
	},
	"handlers.SoundRequest": {
		"type": "object",
		"properties": {
			"name": {
				"type": "string"
			},
			"url": {
				"type": "string"
			}
		}
	},
	"handlers.SubmitAssessmentRequest": {
		"type": "object",
		"properties": {
			"answers": {
				"type": "array",
				"items": {
					"type": "integer"
				}
			}
		}
	},
	"handlers.TranslationResponse": {
		"type": "object",
		"properties": {
			"locale": {
				"type": "string"
			},
			"key": {
				"type": "string"
			},
			"value": {
				"type": "string"
			}
		}
	},
	"handlers.VideoRequest": {
		"type": "object",
		"properties": {
			"title": {
				"type": "string"
			},
			"description": {
				"type": "string"
			},
			"url": {
				"type": "string"
			}
		}
	},
	"repo.DayCount": {
		"type": "object",
		"properties": {
			"date": {
				"type": "string"
			},
			"count": {
				"type": "integer"
			}
		}
	},
	"services.Dashboard": {
		"type": "object",
		"properties": {
			"completedChallenges": {
				"type": "integer"
			},
			"totalChallenges": {
				"type": "integer"
			},
			"missedChallenges": {
				"type": "integer"
			},
			"journalEntries": {
				"type": "integer"
			},
			"journalActivity": {
				"type": "array",
				"items": {
					"$ref": "#/definitions/repo.DayCount"
				}
			},
			"latestResult": {
				"$ref": "#/definitions/services.Outcome"
			}
		}
	},
	"services.Outcome": {
		"type": "object",
		"properties": {
			"result": {
				"$ref": "#/definitions/domain.TestResult"
			},
			"severity": {
				"$ref": "#/definitions/assessment.Severity"
			}
		}
	},
	"services.Session": {
		"type": "object",
		"properties": {
			"user": {
				"$ref": "#/definitions/domain.User"
			},
			"token": {
				"type": "string"
			}
		}
	},
	"utils.Pagination": {
		"type": "object",
		"properties": {
			"page": {
				"type": "integer"
			},
			"page_size": {
				"type": "integer"
			},
			"total": {
				"type": "integer"
			},
			"total_pages": {
				"type": "integer"
			},
			"has_next": {
				"type": "boolean"
			}
		}
	}
},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header",
			"description": "Bearer <token> from /auth/login or /auth/signup"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Resi wellness API",
	Description:      "Journal, daily challenges, DASS-21 self-assessment, community forum, curated resources and an AI assistant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
