package main

// HTML template for the API documentation homepage
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Lassoverse API</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            line-height: 1.6;
            color: #2d3748;
            background: linear-gradient(135deg, #1d3461 0%, #d5433c 100%);
            min-height: 100vh;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 2rem;
        }

        .header {
            text-align: center;
            color: white;
            margin-bottom: 3rem;
        }

        .header h1 {
            font-size: 3rem;
            font-weight: 800;
            margin-bottom: 0.5rem;
            text-shadow: 0 2px 4px rgba(0,0,0,0.3);
        }

        .header p {
            font-size: 1.2rem;
            opacity: 0.9;
            margin-bottom: 2rem;
        }

        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(160px, 1fr));
            gap: 1rem;
            margin-bottom: 3rem;
        }

        .stat-card {
            background: rgba(255, 255, 255, 0.1);
            border-radius: 12px;
            padding: 1.5rem;
            text-align: center;
            backdrop-filter: blur(10px);
            border: 1px solid rgba(255, 255, 255, 0.2);
        }

        .stat-card h3 {
            color: white;
            font-size: 2rem;
            font-weight: 700;
            margin-bottom: 0.5rem;
        }

        .stat-card p {
            color: rgba(255, 255, 255, 0.8);
            font-size: 0.9rem;
        }

        .main-content {
            background: white;
            border-radius: 16px;
            padding: 2rem;
            box-shadow: 0 20px 40px rgba(0,0,0,0.1);
        }

        .section {
            margin-bottom: 2.5rem;
        }

        .section h2 {
            color: #2d3748;
            font-size: 1.5rem;
            font-weight: 600;
            margin-bottom: 1rem;
            padding-bottom: 0.5rem;
            border-bottom: 2px solid #e2e8f0;
        }

        .endpoints-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(320px, 1fr));
            gap: 1.5rem;
        }

        .endpoint {
            background: #f7fafc;
            border: 1px solid #e2e8f0;
            border-radius: 12px;
            padding: 1.5rem;
        }

        .endpoint h3 {
            color: #2d3748;
            font-size: 1rem;
            font-weight: 600;
            margin-bottom: 0.5rem;
            font-family: 'SF Mono', Monaco, 'Cascadia Code', monospace;
        }

        .endpoint p {
            color: #718096;
            font-size: 0.9rem;
            margin-bottom: 1rem;
        }

        .endpoint a {
            color: #1d3461;
            text-decoration: none;
            font-weight: 500;
            font-size: 0.9rem;
        }

        .badge {
            display: inline-block;
            padding: 0.25rem 0.75rem;
            border-radius: 20px;
            font-size: 0.75rem;
            font-weight: 500;
            margin-bottom: 0.5rem;
        }

        .badge-rest {
            background: #c6f6d5;
            color: #22543d;
        }

        .badge-sse {
            background: #fbd38d;
            color: #744210;
        }

        .badge-ws {
            background: #e9d8fd;
            color: #553c9a;
        }

        .footer {
            text-align: center;
            padding: 2rem 0;
            color: #718096;
            font-size: 0.9rem;
            border-top: 1px solid #e2e8f0;
            margin-top: 2rem;
        }

        @media (max-width: 768px) {
            .container {
                padding: 1rem;
            }

            .header h1 {
                font-size: 2rem;
            }

            .stats-grid,
            .endpoints-grid {
                grid-template-columns: 1fr;
            }
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>&#9917; Lassoverse API</h1>
            <p>A Ted Lasso themed playground for testing API clients, streaming, and WebSockets. Believe!</p>

            <div class="stats-grid">
                <div class="stat-card">
                    <h3>{{.Characters}}</h3>
                    <p>Characters</p>
                </div>
                <div class="stat-card">
                    <h3>{{.Teams}}</h3>
                    <p>Teams</p>
                </div>
                <div class="stat-card">
                    <h3>{{.Matches}}</h3>
                    <p>Matches</p>
                </div>
                <div class="stat-card">
                    <h3>{{.Episodes}}</h3>
                    <p>Episodes</p>
                </div>
                <div class="stat-card">
                    <h3>{{.Quotes}}</h3>
                    <p>Quotes</p>
                </div>
            </div>
        </div>

        <div class="main-content">
            <div class="section">
                <h2>API Endpoints</h2>
                <div class="endpoints-grid">
                    <div class="endpoint">
                        <span class="badge badge-rest">REST</span>
                        <h3>GET /api/v1/health</h3>
                        <p>API health check and system status</p>
                        <a href="/api/v1/health" target="_blank">Try it &rarr;</a>
                    </div>

                    <div class="endpoint">
                        <span class="badge badge-rest">REST</span>
                        <h3>GET /api/v1/characters</h3>
                        <p>The full Richmond family, filterable by role and team</p>
                        <a href="/api/v1/characters" target="_blank">Try it &rarr;</a>
                    </div>

                    <div class="endpoint">
                        <span class="badge badge-rest">REST</span>
                        <h3>GET /api/v1/quotes/random</h3>
                        <p>A random dose of Ted Lasso wisdom</p>
                        <a href="/api/v1/quotes/random" target="_blank">Try it &rarr;</a>
                    </div>

                    <div class="endpoint">
                        <span class="badge badge-rest">REST</span>
                        <h3>POST /api/v1/believe</h3>
                        <p>Tell Ted your situation, get personalized encouragement</p>
                        <a href="/api/v1/coaching/principles" target="_blank">Coaching principles &rarr;</a>
                    </div>

                    <div class="endpoint">
                        <span class="badge badge-sse">SSE</span>
                        <h3>GET /api/v1/stream/pep-talk</h3>
                        <p>A streaming pep talk, chunk by chunk</p>
                        <a href="/api/v1/stream/test" target="_blank">Test your SSE client &rarr;</a>
                    </div>

                    <div class="endpoint">
                        <span class="badge badge-sse">SSE</span>
                        <h3>GET /api/v1/matches/live/stream</h3>
                        <p>A full simulated match streamed as server-sent events</p>
                        <a href="/api/v1/matches/live/stream?speed=5" target="_blank">Try it &rarr;</a>
                    </div>

                    <div class="endpoint">
                        <span class="badge badge-ws">WebSocket</span>
                        <h3>GET /api/v1/matches/live</h3>
                        <p>Bidirectional live match simulation with ping control</p>
                    </div>

                    <div class="endpoint">
                        <span class="badge badge-ws">WebSocket</span>
                        <h3>GET /ws/test</h3>
                        <p>Echo endpoint for checking WebSocket connectivity</p>
                    </div>
                </div>
            </div>

            <div class="footer">
                <p>
                    Built for SDK generation demos. All data is fictional and regenerated on restart.
                    <br>
                    Be curious, not judgmental.
                </p>
                <p>Version {{.Version}} &middot; Last updated: {{.LastUpdated}}</p>
            </div>
        </div>
    </div>
</body>
</html>`
