package errorformat

// Recorded record-API failures.

const createRecordErrorsFixture = `{
  "status": 400,
  "body": {
    "message": "An error occurred while trying to update the record. Please try again.",
    "statusCode": 400,
    "enhancedErrorType": "RecordError",
    "output": {
      "errors": [
        {
          "constituentField": null,
          "duplicateRecordError": null,
          "errorCode": "PORTAL_USER_ALREADY_EXISTS_FOR_CONTACT",
          "field": null,
          "fieldLabel": null,
          "message": "portal user already exists for contact"
        }
      ],
      "fieldErrors": {}
    },
    "id": "-1811437745"
  },
  "headers": {},
  "ok": false,
  "statusText": "Bad Request",
  "errorType": "fetchResponse"
}`

const createRecordFieldErrorsFixture = `{
  "status": 400,
  "body": {
    "message": "An error occurred while trying to update the record. Please try again.",
    "statusCode": 400,
    "enhancedErrorType": "RecordError",
    "output": {
      "errors": [],
      "fieldErrors": {
        "ProfileId": [
          {
            "constituentField": null,
            "duplicateRecordError": null,
            "errorCode": "REQUIRED_FIELD_MISSING",
            "field": "ProfileId",
            "fieldLabel": "Profile ID",
            "message": "Required fields are missing: [Username, Email, Alias, ProfileId]"
          }
        ],
        "Email": [
          {
            "constituentField": null,
            "duplicateRecordError": null,
            "errorCode": "REQUIRED_FIELD_MISSING",
            "field": "Email",
            "fieldLabel": "Email",
            "message": "Required fields are missing: [Username, Email, Alias, ProfileId]"
          }
        ],
        "Alias": [
          {
            "constituentField": null,
            "duplicateRecordError": null,
            "errorCode": "REQUIRED_FIELD_MISSING",
            "field": "Alias",
            "fieldLabel": "Alias",
            "message": "Required fields are missing: [Username, Email, Alias, ProfileId]"
          }
        ]
      }
    },
    "id": "1826616658"
  },
  "headers": {},
  "ok": false,
  "statusText": "Bad Request",
  "errorType": "fetchResponse"
}`

const apexExceptionFixture = `{
  "status": 403,
  "body": {
    "message": "An error occurred while trying to update the record. Please try again.",
    "statusCode": 403,
    "enhancedErrorType": "RecordError",
    "output": {
      "errors": [
        {
          "constituentField": null,
          "duplicateRecordError": null,
          "errorCode": "CANNOT_INSERT_UPDATE_ACTIVATE_ENTITY",
          "field": null,
          "fieldLabel": null,
          "message": "UserTrigger: execution of BeforeUpdate\n\ncaused by: System.DmlException: Insert failed. First exception on row 0; first error: REQUIRED_FIELD_MISSING, Required fields are missing: [Username, LastName]\n\nTrigger.UserTrigger: line 14, column 1"
        }
      ],
      "fieldErrors": {}
    },
    "id": "1826616658"
  },
  "headers": {},
  "ok": false,
  "statusText": "Unexpected HTTP Status Code: 403",
  "errorType": "fetchResponse"
}`

const errorCodeFixture = `{
  "status": 400,
  "body": {
    "message": "'apiName' value should not be provided for PATCH.",
    "statusCode": 400,
    "errorCode": "ILLEGAL_QUERY_PARAMETER_VALUE",
    "id": "-1433164946"
  },
  "headers": {},
  "ok": false,
  "statusText": "Bad Request",
  "errorType": "fetchResponse"
}`
