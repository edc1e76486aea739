package vectorize

// analysisPrompt asks the generator for a short profile analysis whose byte
// encoding becomes the content-derived part of the vector.
const analysisPrompt = `Analyze this candidate profile briefly (max 500 words):
%s

Provide a concise analysis of:
1. Key technical skills (2-3 sentences)
2. Experience highlights (2-3 sentences)
3. Educational relevance (1-2 sentences)
4. Overall potential (1-2 sentences)

Keep the analysis focused and under 500 words.`
