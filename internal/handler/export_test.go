package handler

// Export for testing
type NetworkResponse = networkResponse
type ScoreResponse = scoreResponse
type RateLimitStatusResponse = rateLimitStatusResponse
type ClaimResponse = claimResponse
type ClaimHistoryResponse = claimHistoryResponse
type RateLimitedResponse = rateLimitedResponse

var WriteServiceError = writeServiceError
var Error = writeError
