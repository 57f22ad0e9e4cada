package constants

const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read validated input"
	ERROR_PARSE_BODY           = "Cannot parse request body"

	MISSING_LOGIN_INPUT = "Email and password are required"
	INVALID_EMAIL       = "Email does not exist"
	INVALID_PASSWORD    = "Wrong password"
	EMAIL_EXISTS        = "Email already registered"
	NOT_OWNER           = "Resource does not belong to your business"

	ORDER_NOT_FOUND     = "Order not found"
	BILL_NOT_FOUND      = "Bill not found"
	PRODUCT_NOT_FOUND   = "Product not found"
	TABLE_NOT_FOUND     = "Table not found"
	CUSTOMER_NOT_FOUND  = "Customer not found"
	INVENTORY_NOT_FOUND = "Inventory item not found"

	ORDER_STATUS_PENDING   = "Pending"
	ORDER_STATUS_COMPLETED = "Completed"
)
