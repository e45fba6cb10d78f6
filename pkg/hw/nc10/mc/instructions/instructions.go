package instructions

const evenOpCodes = `
  MOVB MOVH MOVW RES MOVR MOVL RES RES
  NEGB NEGH NEGW RES NEGR NEGL RES REP
  SBRB SBRH SBRW RES SBRR SBRL RES REPZ
  CMPB CMPH CMPW RES CMPR CMPL RES REPNZ
  ADDB ADDH ADDW RES ADDR ADDL RES TRAP
  ADCB ADCH ADCW RES SQTR SQTL RES RES
  SUBB SUBH SUBW RES SUBR SUBL RES RES
  SBBB SBBH SBBW RES SGNR SGNL RES RES
  MULB MULH MULW RES MULR MULL RES RES
  DVRB DVRH DVRW RES DVRR DVRL RES RES
  REMB REMH REMW RES REMR REML RES RES
  DIVB DIVH DIVW RES DIVR DIVL RES RES
  BITB BITH BITW RES RES  RES  RES RES
  RES  RES  RES  RES RES  RES  RES RES
  RES  RES  RES  RES RES  RES  RES RES
  RES  RES  RES  RES ESC  ESC  ESC RES
`

const oddOpCodes = `
  SFTB SFTH SFTW RES CVBR NOP  RES BG
  SFAB SFAH SFAW RES CVHR CLC  RES BLE
  ROTB ROTH ROTW RES CVWR STC  RES BGU
  FFOB FFOH FFOW RES CVLR CMC  RES BLEU
  ANDB ANDH ANDW RES CVBL ERON RES BGE
  ORB  ORH  ORW  RES CVHL EROF RES BL
  XORB XORH XORW RES CVWL BKPT RES BGEU
  NOTB NOTH NOTW RES CVRL RSET RES BLU
  ADCD RES  LDPR RES CVBW EI   RES BNE
  SBBD RES  STPR RES CVHW DI   RES BE
  RES  RES  LCNT RES CVWB RES  RES BNV
  RES  RES  LPTR RES CVWH RES  RES BV
  RES  RES  BCNT RES CVRW RETI RES CALL
  RES  RES  BPTR RES CVLW WAIT RES JMP
  RES  RES  MOVA RES RES  RET  RES RETP
  ESC  ESC  ESC  ESC ESC  ESC  ESC ESC
`

var Opcodes OpCodesDescriptor = NewOpCodesDescriptor(evenOpCodes, oddOpCodes)
