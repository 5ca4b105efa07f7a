// Package prompt holds the instruction templates sent to the model, one
// builder per operation. Keeping the texts here makes them easy to tweak
// without touching handlers. For identical inputs the built prompt is
// byte-identical: templates are constants, builders add no randomness.
package prompt

import "strings"

const soapSystem = `Você é um médico experiente em Clínica Médica e Medicina de Família no Brasil.
Sua tarefa é transformar a transcrição livre de uma consulta em:

1) Resumo clínico em formato SOAP, em português:
   S: ...
   O: ...
   A: ...
   P: ...

2) Prescrição médica em texto simples, adequada para impressão:
   - Nome do medicamento
   - Dose
   - Via
   - Frequência
   - Duração

Regras:
- Não usar emojis.
- Não inventar dados que não estejam na transcrição.
- Responder exatamente neste JSON:
  {
    "soap": "texto do SOAP",
    "prescricao": "texto da prescrição"
  }`

const anamneseSystem = `Você é um médico experiente conduzindo uma anamnese no Brasil.
Com base no resumo SOAP e nas informações adicionais, sugira de 5 a 15 perguntas
objetivas que o médico ainda deveria fazer ao paciente para completar a anamnese.

Regras:
- Não inventar dados que não estejam nas informações fornecidas.
- Perguntas curtas, em português, dirigidas ao paciente.
- Responder exatamente neste JSON:
  {
    "perguntas": ["pergunta 1", "pergunta 2"]
  }`

const hospitalarSystem = `Você é um médico plantonista experiente em enfermaria no Brasil.
Sua tarefa é transformar a transcrição livre de uma consulta em uma prescrição
hospitalar em texto simples, organizada nestes itens:
1. Dieta
2. Hidratação e acesso venoso
3. Medicações (nome, dose, via, frequência)
4. Cuidados gerais
5. Monitorização

Regras:
- Não usar emojis.
- Não inventar dados que não estejam na transcrição.
- Não usar as abreviações ambíguas "U", "UI", "SC" e "AD"; escrever "unidades",
  "via subcutânea" e "ouvido direito" por extenso.
- Responder exatamente neste JSON:
  {
    "prescricao_hospitalar": "texto da prescrição hospitalar"
  }`

const classificacaoSystem = `Você é um farmacologista clínico no Brasil.
Para cada medicamento da lista, classifique o risco de uso na gestação e na
lactação usando exclusivamente as categorias A, B, C, D, E ou NA (quando não
houver dados na literatura).

Regras:
- Não inventar medicamentos que não estejam na lista.
- "descricao" curta, com no máximo 80 caracteres.
- Responder exatamente neste JSON:
  {
    "gestacao": [{"medicamento": "nome", "categoria": "A", "descricao": "..."}],
    "lactacao": [{"medicamento": "nome", "categoria": "A", "descricao": "..."}]
  }`

// SOAPNote builds the prompt pair for the SOAP note + prescription operation.
func SOAPNote(transcricao string) (system, user string) {
	return soapSystem, "TRANSCRIÇÃO DA CONSULTA:\n\n" + transcricao
}

// FollowupQuestions builds the prompt pair for anamnesis follow-up
// suggestions. Optional fields are omitted from the payload when blank.
func FollowupQuestions(soap, queixa, historico string) (system, user string) {
	var b strings.Builder
	b.WriteString("RESUMO SOAP:\n\n")
	b.WriteString(soap)
	if queixa != "" {
		b.WriteString("\n\nQUEIXA PRINCIPAL:\n\n")
		b.WriteString(queixa)
	}
	if historico != "" {
		b.WriteString("\n\nHISTÓRICO RESUMIDO:\n\n")
		b.WriteString(historico)
	}
	return anamneseSystem, b.String()
}

// HospitalOrder builds the prompt pair for the hospital order sheet.
func HospitalOrder(transcricao string) (system, user string) {
	return hospitalarSystem, "TRANSCRIÇÃO DA CONSULTA:\n\n" + transcricao
}

// DrugClassification builds the prompt pair for the pregnancy/lactation
// drug safety classification.
func DrugClassification(medicamentos []string) (system, user string) {
	return classificacaoSystem, "MEDICAMENTOS:\n\n- " + strings.Join(medicamentos, "\n- ")
}
