// Package api provides the REST API of QuorumEventGate
// @title QuorumEventGate API
// @version 1.0
// @description Health probes and read-only inspection of the trust store, the processing cursor and the auto-whitelist range
// @contact.name API Support
// @contact.url https://github.com/goran-ethernal/QuorumEventGate
// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @basePath /
// @schemes http https
package api
